package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/nikolayk812/storefront/internal/port"
)

// ErrCheckoutIncomplete is returned by Submit while a step is missing.
var ErrCheckoutIncomplete = errors.New("checkout incomplete")

// CheckoutStore accumulates the checkout steps and submits the order.
// Steps do not validate each other.
type CheckoutStore struct {
	cart   *CartStore
	orders port.OrderCreator
	policy domain.ShippingPolicy
	logger *zap.Logger
	newRef func() uuid.UUID

	mu        sync.Mutex
	draft     domain.CheckoutDraft
	reference uuid.UUID
}

type CheckoutStoreDeps struct {
	Cart     *CartStore
	Orders   port.OrderCreator
	Shipping domain.ShippingPolicy
	Logger   *zap.Logger
	// NewReference defaults to uuid.New.
	NewReference func() uuid.UUID
}

func NewCheckoutStore(deps CheckoutStoreDeps) (*CheckoutStore, error) {
	if deps.Cart == nil {
		return nil, fmt.Errorf("cart store is nil")
	}
	if deps.Orders == nil {
		return nil, fmt.Errorf("order creator is nil")
	}

	newRef := deps.NewReference
	if newRef == nil {
		newRef = uuid.New
	}

	return &CheckoutStore{
		cart:   deps.Cart,
		orders: deps.Orders,
		policy: deps.Shipping,
		logger: observability.OrNop(deps.Logger),
		newRef: newRef,
	}, nil
}

func (s *CheckoutStore) SetContact(contact domain.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Contact = &contact
}

func (s *CheckoutStore) SetAddress(addr domain.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Address = &addr
}

// PrepareSummary prices the current cart once and stores the result.
// Later cart changes do not alter it until PrepareSummary runs again.
func (s *CheckoutStore) PrepareSummary() domain.OrderSummary {
	summary := domain.NewOrderSummary(s.cart.Snapshot(), s.policy)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Summary = &summary
	return summary
}

func (s *CheckoutStore) SetPayment(payment domain.PaymentInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Payment = &payment
}

func (s *CheckoutStore) Draft() domain.CheckoutDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *CheckoutStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = domain.CheckoutDraft{}
	s.reference = uuid.Nil
}

// Submit places the order. On success the cart is emptied and the draft reset.
// A failed submit keeps the draft and its client reference, so retrying it
// cannot create a second order on servers that deduplicate.
func (s *CheckoutStore) Submit(ctx context.Context) (domain.Order, error) {
	s.mu.Lock()
	draft := s.draft
	if missing := draft.Missing(); len(missing) > 0 {
		s.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%w: missing %s", ErrCheckoutIncomplete, strings.Join(missing, ", "))
	}
	if s.reference == uuid.Nil {
		s.reference = s.newRef()
	}
	reference := s.reference
	s.mu.Unlock()

	req := domain.OrderRequest{
		ClientReference: reference,
		Contact:         *draft.Contact,
		Address:         *draft.Address,
		Summary:         *draft.Summary,
		Payment:         *draft.Payment,
	}

	order, err := s.orders.PlaceOrder(ctx, req)
	if err != nil {
		s.logger.Warn("place order", zap.Stringer("client_reference", reference), zap.Error(err))
		return domain.Order{}, fmt.Errorf("orders.PlaceOrder: %w", err)
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Stringer("client_reference", reference),
		zap.Stringer("total", order.Total),
	)

	s.cart.Clear()
	s.Reset()

	return order, nil
}
