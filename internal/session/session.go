// Package session holds the client's transient shop state: cart, favorites,
// authenticated user and live search. One Session is constructed per client
// and passed by reference to consumers; there are no package-level globals.
//
// All mutators are synchronous local reducers. Only LoadCatalog, Login and
// Checkout reach the network, and each reports failure through its return
// value — nothing escapes the component boundary.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"bellehair/internal/client"
	"bellehair/internal/domain"
)

// minQueryLen is the threshold below which live search yields nothing.
const minQueryLen = 3

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("empty cart")

// API is the slice of the catalog client the session depends on.
type API interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Login(ctx context.Context, email, password string) (*domain.UserProjection, error)
	Logout()
	SubmitPayment(ctx context.Context, method string, details map[string]any, draft domain.OrderDraft) (*client.PaymentResult, error)
}

// Session owns the shop state. It is not safe for concurrent use; the
// execution model is single-threaded and event-driven, like the UI it
// backs.
type Session struct {
	api      API
	notify   Notifier
	fallback []domain.Product

	products      []domain.Product
	currentUser   *domain.UserProjection
	cart          []domain.CartItem
	favorites     []string
	searchQuery   string
	searchResults []domain.Product
	catalogErr    error
}

// New builds a session. notify may be nil; fallback is the bundled static
// catalog snapshot used when the API is unreachable.
func New(api API, notify Notifier, fallback []domain.Product) *Session {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Session{api: api, notify: notify, fallback: fallback}
}

// LoadCatalog fetches the product list once at session start. On failure it
// falls back to the bundled snapshot, records the error state and still
// returns the error. This is the only fallback policy in the system.
func (s *Session) LoadCatalog(ctx context.Context) error {
	products, err := s.api.Products(ctx)
	if err != nil {
		s.products = slices.Clone(s.fallback)
		s.catalogErr = err
		s.notify.Error("Impossible de charger les produits. Veuillez réessayer plus tard.")
		s.refreshSearch()
		return err
	}
	s.products = products
	s.catalogErr = nil
	s.refreshSearch()
	return nil
}

// CatalogError reports the recorded load failure, nil when the catalog
// loaded cleanly.
func (s *Session) CatalogError() error { return s.catalogErr }

func (s *Session) Products() []domain.Product { return s.products }

// ProductByID is a total lookup: absent ids report ok=false, never an
// error.
func (s *Session) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Session) ProductsByCategory(category string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Session) FeaturedProducts() []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// AddToCart increments the existing line or inserts a new one with quantity
// 1. A product with zero stock is refused; the refusal is user-visible, not
// an error. Stock itself is never decremented anywhere.
func (s *Session) AddToCart(productID string) bool {
	p, ok := s.ProductByID(productID)
	if !ok {
		return false
	}
	if p.Stock <= 0 {
		s.notify.Error("Ce produit est en rupture de stock")
		return false
	}
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity++
			s.notify.Success("Produit ajouté au panier")
			return true
		}
	}
	s.cart = append(s.cart, domain.CartItem{ProductID: productID, Quantity: 1})
	s.notify.Success("Produit ajouté au panier")
	return true
}

// RemoveFromCart deletes the line if present, no-op otherwise.
func (s *Session) RemoveFromCart(productID string) {
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart = slices.Delete(s.cart, i, i+1)
			s.notify.Info("Produit retiré du panier")
			return
		}
	}
}

// UpdateQuantity sets the line quantity directly; qty <= 0 is equivalent to
// remove. There is no upper bound against stock.
func (s *Session) UpdateQuantity(productID string, qty int64) {
	if qty <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity = qty
			return
		}
	}
}

func (s *Session) ClearCart() { s.cart = nil }

func (s *Session) Cart() []domain.CartItem { return slices.Clone(s.cart) }

// CartTotal sums quantity × price over live lookups in the current catalog
// snapshot; lines whose product is absent contribute exactly 0.
func (s *Session) CartTotal() float64 {
	var total float64
	for _, item := range s.cart {
		if p, ok := s.ProductByID(item.ProductID); ok {
			total += p.Price * float64(item.Quantity)
		}
	}
	return total
}

func (s *Session) CartItemCount() int64 {
	var n int64
	for _, item := range s.cart {
		n += item.Quantity
	}
	return n
}

// ToggleFavorite adds the id if absent, removes it if present. Purely
// local; login status is irrelevant.
func (s *Session) ToggleFavorite(productID string) {
	if i := slices.Index(s.favorites, productID); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
		s.notify.Info("Retiré des favoris")
		return
	}
	s.favorites = append(s.favorites, productID)
	s.notify.Success("Ajouté aux favoris")
}

func (s *Session) Favorites() []string { return slices.Clone(s.favorites) }

func (s *Session) IsFavorite(productID string) bool {
	return slices.Contains(s.favorites, productID)
}

// Login authenticates through the API. On success the user's favorites
// replace whatever was toggled while anonymous — an intentional replication
// of the original behavior, not a merge.
func (s *Session) Login(ctx context.Context, email, password string) error {
	u, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notify.Error("Email ou mot de passe incorrect")
		return err
	}
	s.currentUser = u
	s.favorites = slices.Clone(u.Favorites)
	s.notify.Success(fmt.Sprintf("Bienvenue, %s!", u.FirstName))
	return nil
}

// Logout clears the user, the favorites and the stored token.
func (s *Session) Logout() {
	s.api.Logout()
	s.currentUser = nil
	s.favorites = nil
	s.notify.Info("Vous êtes déconnecté")
}

func (s *Session) CurrentUser() *domain.UserProjection { return s.currentUser }

// SetSearchQuery recomputes results synchronously: queries of at least
// minQueryLen characters select the catalog subsequence whose name or
// description contains the query case-insensitively; shorter queries clear
// the results.
func (s *Session) SetSearchQuery(query string) {
	s.searchQuery = query
	s.refreshSearch()
}

func (s *Session) SearchQuery() string { return s.searchQuery }

func (s *Session) SearchResults() []domain.Product { return s.searchResults }

func (s *Session) refreshSearch() {
	if utf8.RuneCountInString(s.searchQuery) < minQueryLen {
		s.searchResults = nil
		return
	}
	q := strings.ToLower(s.searchQuery)
	results := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
		}
	}
	s.searchResults = results
}

// Checkout builds the order draft from the cart, submits the payment and
// clears the cart only on success. A declined payment leaves the cart
// intact so the user can retry.
func (s *Session) Checkout(ctx context.Context, method string, details map[string]any) (*client.PaymentResult, error) {
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}
	draft := domain.OrderDraft{
		Items: slices.Clone(s.cart),
		Total: s.CartTotal(),
	}
	if u := s.currentUser; u != nil {
		draft.CustomerName = u.FirstName + " " + u.LastName
		draft.Email = u.Email
	}
	res, err := s.api.SubmitPayment(ctx, method, details, draft)
	if err != nil {
		s.notify.Error("Paiement refusé. Veuillez vérifier vos informations et réessayer.")
		return nil, err
	}
	s.ClearCart()
	s.notify.Success("Paiement traité avec succès")
	return res, nil
}
