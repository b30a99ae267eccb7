// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/hfashion/storefront/internal/pkg/money"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Checkout steps in the order the storefront walks through them
const (
	StepShipping = 1
	StepPayment  = 2
	StepReview   = 3
)

// Selection kinds a shopper chooses during checkout
const (
	SelectionShipping = "shipping"
	SelectionPayment  = "payment"
)

var (
	// ErrInvalidStep is returned by RecordProgress for a step outside 1..3
	ErrInvalidStep = errors.New("invalid checkout step")
	// ErrInvalidSelection is returned by RecordSelection for an unknown kind
	ErrInvalidSelection = errors.New("invalid checkout selection")
)

// Carts reads the session's cart
type Carts interface {
	GetCart(ctx context.Context, sessionID string) *cart.Cart
}

// Service prices the cart ahead of order placement and reports funnel
// progress. It never mutates the cart.
type Service struct {
	carts   Carts
	pricing order.Pricing
	events  tracking.Emitter
	log     logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(carts Carts, pricing order.Pricing, events tracking.Emitter, log logrus.FieldLogger) *Service {
	if events == nil {
		events = tracking.Nop{}
	}
	return &Service{
		carts:   carts,
		pricing: pricing,
		events:  events,
		log:     log,
	}
}

// Summary is the price breakdown shown before an order is placed. Its
// amounts match what PlaceOrder would charge for the same cart.
type Summary struct {
	Cart                  *cart.Cart      `json:"cart"`
	ItemCount             int             `json:"item_count"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Shipping              decimal.Decimal `json:"shipping"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	FreeShipping          bool            `json:"free_shipping"`
	FreeShippingRemaining decimal.Decimal `json:"free_shipping_remaining"`
}

// ProgressRequest represents a checkout funnel step report
type ProgressRequest struct {
	Step   int    `json:"step" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// SelectionRequest represents a shipping method or payment type choice
type SelectionRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// GetSummary prices the session's cart. An empty cart yields a zero summary
// that still carries the flat shipping fee, as PlaceOrder would refuse it.
func (s *Service) GetSummary(ctx context.Context, sessionID string) *Summary {
	c := s.carts.GetCart(ctx, sessionID)
	quote := s.pricing.Quote(c.Total)

	remaining := money.Zero
	if quote.Subtotal.LessThan(s.pricing.FreeShippingThreshold) {
		remaining = money.Cents(s.pricing.FreeShippingThreshold.Sub(quote.Subtotal))
	}

	return &Summary{
		Cart:                  c,
		ItemCount:             c.ItemCount(),
		Subtotal:              quote.Subtotal,
		Shipping:              quote.Shipping,
		Tax:                   quote.Tax,
		Total:                 quote.Total,
		FreeShipping:          quote.Shipping.IsZero(),
		FreeShippingRemaining: remaining,
	}
}

// RecordProgress emits a checkout_progress event valued at the current
// order total and returns the summary it was computed from
func (s *Service) RecordProgress(ctx context.Context, sessionID string, req ProgressRequest) (*Summary, error) {
	if req.Step < StepShipping || req.Step > StepReview {
		return nil, ErrInvalidStep
	}

	summary := s.GetSummary(ctx, sessionID)
	s.events.Emit(ctx, tracking.New(tracking.EventCheckout, sessionID, map[string]any{
		"step":   req.Step,
		"status": req.Status,
		"value":  summary.Total,
	}))

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"step":       req.Step,
		"status":     req.Status,
	}).Debug("Checkout progress recorded")

	return summary, nil
}

// RecordSelection emits a checkout_selection event for the shipping method or
// payment type the shopper picked
func (s *Service) RecordSelection(ctx context.Context, sessionID string, req SelectionRequest) error {
	switch req.Type {
	case SelectionShipping, SelectionPayment:
	default:
		return ErrInvalidSelection
	}

	s.events.Emit(ctx, tracking.New(tracking.EventCheckoutChoice, sessionID, map[string]any{
		"type":  req.Type,
		"value": req.Value,
	}))
	return nil
}
