package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"bellehair/internal/domain"
	"bellehair/internal/repository"
)

// ErrPaymentDeclined is the simulated 10% decline. A declined payment has no
// side effects.
var ErrPaymentDeclined = errors.New("payment declined")

// PaymentConfig pins the two non-deterministic knobs of the simulation so
// tests can force either branch.
type PaymentConfig struct {
	// SuccessProbability in [0,1]. 1.0 always succeeds, 0.0 always declines.
	SuccessProbability float64
	// Delay is the artificial processing latency before the outcome.
	Delay time.Duration
}

// DefaultPaymentConfig matches the original simulation: 90% success after
// 1.5 seconds.
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{SuccessProbability: 0.9, Delay: 1500 * time.Millisecond}
}

// Receipt is returned on a successful payment. Both ids are freshly
// generated per call; submits are independent and never idempotent.
type Receipt struct {
	TransactionID string
	OrderID       string
}

// PaymentService simulates payment processing and appends a confirmed order
// on success. It is the only mutator in the system.
type PaymentService struct {
	orders repository.OrderRepository
	cfg    PaymentConfig
	rnd    func() float64
}

// NewPaymentService builds the service. rnd may be nil, in which case the
// global math/rand source is used.
func NewPaymentService(orders repository.OrderRepository, cfg PaymentConfig, rnd func() float64) *PaymentService {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &PaymentService{orders: orders, cfg: cfg, rnd: rnd}
}

// Submit runs the simulated payment. details are carried opaquely and never
// inspected; the draft is stored as-is inside the order on success.
func (s *PaymentService) Submit(ctx context.Context, method string, details map[string]any, draft domain.OrderDraft) (*Receipt, error) {
	if method == "" {
		return nil, ErrInvalidInput
	}
	if s.cfg.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.Delay):
		}
	}
	if s.rnd() >= s.cfg.SuccessProbability {
		return nil, ErrPaymentDeclined
	}
	o := domain.Order{
		ID:            uuid.NewString(),
		OrderDraft:    draft,
		PaymentMethod: method,
		TransactionID: uuid.NewString(),
		Status:        domain.OrderStatusConfirmed,
		Date:          time.Now().UTC(),
	}
	if err := s.orders.AppendOrder(ctx, &o); err != nil {
		return nil, err
	}
	return &Receipt{TransactionID: o.TransactionID, OrderID: o.ID}, nil
}
