// Package client is the typed wrapper over the catalog API. It attaches the
// bearer token from its TokenStore to every request when one is present and
// turns non-2xx responses into *APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bellehair/internal/domain"
)

// APIError carries the status and body of a failed call.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// PaymentResult mirrors the success body of POST /payment.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	OrderID       string `json:"orderId"`
	Message       string `json:"message"`
}

type loginResponse struct {
	User  domain.UserProjection `json:"user"`
	Token string                `json:"token"`
}

// Client talks to the catalog API. No timeout is configured on the
// underlying http.Client; a hung call blocks until its context is done.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New builds a client. tokens may be nil, in which case an in-memory store
// is used.
func New(baseURL string, tokens TokenStore) *Client {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &Client{baseURL: baseURL, http: &http.Client{}, tokens: tokens}
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/featured", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login stores the returned token on success so later calls carry it.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.UserProjection, error) {
	body := map[string]string{"email": email, "password": password}
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.tokens.SetToken(out.Token)
	return &out.User, nil
}

// Logout discards the stored token. There is no server-side session to end.
func (c *Client) Logout() {
	c.tokens.Clear()
}

func (c *Client) SubmitPayment(ctx context.Context, method string, details map[string]any, draft domain.OrderDraft) (*PaymentResult, error) {
	body := map[string]any{
		"paymentMethod":  method,
		"paymentDetails": details,
		"order":          draft,
	}
	var out PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
			apiErr.Code = e.Error
			apiErr.Message = e.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
