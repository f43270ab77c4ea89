package service

import (
	"context"
	"errors"

	"bellehair/internal/domain"
	"bellehair/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// CatalogService exposes the read-only catalog projections.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, repository.ProductFilter{})
}

func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, repository.ProductFilter{FeaturedOnly: true})
}

// ByCategory matches exactly and case-sensitively; an unknown category
// returns an empty list, not an error.
func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListProducts(ctx, repository.ProductFilter{Category: category})
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetProduct(ctx, id)
}
