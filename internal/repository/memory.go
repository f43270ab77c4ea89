package repository

import (
	"context"
	"sync"

	"bellehair/internal/domain"
)

// MemoryStore holds the boot-time catalog and the process-lifetime order
// list. Products and users are never mutated after construction; the order
// append is the single write path and is guarded by the mutex so the store
// stays safe under concurrent request handling.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	productIdx map[string]int
	users      []domain.User
	orders     []domain.Order
}

func NewMemoryStore(products []domain.Product, users []domain.User) *MemoryStore {
	idx := make(map[string]int, len(products))
	for i, p := range products {
		idx[p.ID] = i
	}
	return &MemoryStore{
		products:   products,
		productIdx: idx,
		users:      users,
	}
}

var (
	_ CatalogRepository = (*MemoryStore)(nil)
	_ OrderRepository   = (*MemoryStore)(nil)
)

// ListProducts returns products in storage order. Filters never fail: an
// unknown category yields an empty list.
func (m *MemoryStore) ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.productIdx[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := m.products[i]
	return &cp, nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AppendOrder(ctx context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *o)
	return nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}
