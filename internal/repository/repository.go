package repository

import (
	"context"
	"errors"

	"bellehair/internal/domain"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

// ProductFilter narrows List results. The zero value selects everything.
type ProductFilter struct {
	Category     string
	FeaturedOnly bool
}

// CatalogRepository is the read-only view over the boot-time catalog.
type CatalogRepository interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// OrderRepository holds the append-only order list. Orders are never updated
// or deleted; ListOrders exists so the append contract is observable.
type OrderRepository interface {
	AppendOrder(ctx context.Context, o *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
