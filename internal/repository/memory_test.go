package repository

import (
	"context"
	"testing"
	"time"

	"bellehair/internal/domain"
)

func seededStore() *MemoryStore {
	return NewMemoryStore(SeedProducts(), SeedUsers())
}

func TestMemoryStore_ListPreservesStorageOrder(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	list, err := store.ListProducts(ctx, ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	seed := SeedProducts()
	if len(list) != len(seed) {
		t.Fatalf("expected %d products, got %d", len(seed), len(list))
	}
	for i := range seed {
		if list[i].ID != seed[i].ID {
			t.Fatalf("order broken at %d: %s != %s", i, list[i].ID, seed[i].ID)
		}
	}
}

func TestMemoryStore_FeaturedFilter(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	list, err := store.ListProducts(ctx, ProductFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) == 0 {
		t.Fatalf("no featured products in seed")
	}
	for _, p := range list {
		if !p.Featured {
			t.Fatalf("%s is not featured", p.ID)
		}
	}
}

func TestMemoryStore_CategoryFilter(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	list, err := store.ListProducts(ctx, ProductFilter{Category: domain.CategoryPeigne})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) == 0 {
		t.Fatalf("no peigne products in seed")
	}
	for _, p := range list {
		if p.Category != domain.CategoryPeigne {
			t.Fatalf("%s has category %s", p.ID, p.Category)
		}
	}

	// unknown category yields empty, not an error
	list, err = store.ListProducts(ctx, ProductFilter{Category: "unknown"})
	if err != nil {
		t.Fatalf("unknown category: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	// matching is case-sensitive
	list, _ = store.ListProducts(ctx, ProductFilter{Category: "Peigne"})
	if len(list) != 0 {
		t.Fatalf("case-sensitive match violated, got %d", len(list))
	}
}

func TestMemoryStore_GetProduct(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	p, err := store.GetProduct(ctx, "p3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Peigne Chauffant Céramique Pro" {
		t.Fatalf("wrong product: %s", p.Name)
	}

	if _, err := store.GetProduct(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStore_GetProduct_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	p, _ := store.GetProduct(ctx, "p1")
	p.Name = "mutated"

	again, _ := store.GetProduct(ctx, "p1")
	if again.Name == "mutated" {
		t.Fatalf("store leaked a mutable reference")
	}
}

func TestMemoryStore_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	u, err := store.GetUserByEmail(ctx, "laura.martin@example.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.ID != "u1" || !u.IsAdmin {
		t.Fatalf("wrong user: %+v", u)
	}

	if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStore_AppendOrder(t *testing.T) {
	ctx := context.Background()
	store := seededStore()

	o := domain.Order{
		ID: "o1",
		OrderDraft: domain.OrderDraft{
			CustomerName: "Laura Martin",
			Items:        []domain.CartItem{{ProductID: "p1", Quantity: 2}},
			Total:        299.98,
		},
		PaymentMethod: "card",
		TransactionID: "t1",
		Status:        domain.OrderStatusConfirmed,
		Date:          time.Now().UTC(),
	}
	if err := store.AppendOrder(ctx, &o); err != nil {
		t.Fatalf("append: %v", err)
	}

	orders, err := store.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != "o1" || orders[0].Status != domain.OrderStatusConfirmed {
		t.Fatalf("order not stored as submitted: %+v", orders[0])
	}
}
