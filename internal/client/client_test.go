package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellehair/internal/domain"
	httpapi "bellehair/internal/http"
	"bellehair/internal/repository"
	"bellehair/internal/service"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	store := repository.NewMemoryStore(repository.SeedProducts(), repository.SeedUsers())
	srv := httpapi.NewServer(
		service.NewCatalogService(store),
		service.NewAuthService(store),
		service.NewPaymentService(store, service.PaymentConfig{SuccessProbability: 1.0}, nil),
		nil,
	)
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_CatalogCalls(t *testing.T) {
	ctx := context.Background()
	ts := newBackend(t)
	c := New(ts.URL+"/api", nil)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 20)
	assert.Equal(t, "p1", products[0].ID)

	featured, err := c.FeaturedProducts(ctx)
	require.NoError(t, err)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	byCat, err := c.ProductsByCategory(ctx, "tissage")
	require.NoError(t, err)
	require.NotEmpty(t, byCat)
	for _, p := range byCat {
		assert.Equal(t, "tissage", p.Category)
	}

	p, err := c.Product(ctx, "p4")
	require.NoError(t, err)
	assert.Equal(t, "Queue de Cheval Clip-in Lisse", p.Name)
}

func TestClient_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	ts := newBackend(t)
	c := New(ts.URL+"/api", nil)

	_, err := c.Product(ctx, "p999")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_LoginStoresToken(t *testing.T) {
	ctx := context.Background()
	ts := newBackend(t)
	tokens := NewMemoryTokenStore()
	c := New(ts.URL+"/api", tokens)

	u, err := c.Login(ctx, "marie.laurent@example.com", "irrelevant")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
	assert.NotEmpty(t, tokens.Token())

	c.Logout()
	assert.Empty(t, tokens.Token())
}

func TestClient_LoginUnauthorized(t *testing.T) {
	ctx := context.Background()
	ts := newBackend(t)
	c := New(ts.URL+"/api", nil)

	_, err := c.Login(ctx, "nobody@example.com", "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	ctx := context.Background()
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	}))
	t.Cleanup(ts.Close)

	tokens := NewMemoryTokenStore()
	c := New(ts.URL, tokens)

	// no token, no header
	_, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	tokens.SetToken("demo-token")
	_, err = c.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer demo-token", gotAuth)
}

func TestClient_DeclinedPayment(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore(repository.SeedProducts(), repository.SeedUsers())
	srv := httpapi.NewServer(
		service.NewCatalogService(store),
		service.NewAuthService(store),
		service.NewPaymentService(store, service.PaymentConfig{SuccessProbability: 0.0}, nil),
		nil,
	)
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)
	c := New(ts.URL+"/api", nil)

	_, err := c.SubmitPayment(ctx, "card", nil, domain.OrderDraft{Total: 10})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "payment_failed", apiErr.Code)
}

func TestClient_SuccessfulPayment(t *testing.T) {
	ctx := context.Background()
	ts := newBackend(t)
	c := New(ts.URL+"/api", nil)

	res, err := c.SubmitPayment(ctx, "card", map[string]any{"cardNumber": "4111"}, domain.OrderDraft{
		Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
		Total: 149.99,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.TransactionID)
	assert.NotEmpty(t, res.OrderID)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)

	assert.Empty(t, s.Token())
	s.SetToken("abc")
	assert.Equal(t, "abc", s.Token())

	// a second store over the same file sees the token
	again := NewFileTokenStore(path)
	assert.Equal(t, "abc", again.Token())

	s.Clear()
	assert.Empty(t, s.Token())
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 400, Code: "payment_failed", Message: "refused"}
	assert.True(t, errors.As(error(err), new(*APIError)))
	assert.Contains(t, err.Error(), "payment_failed")
}
