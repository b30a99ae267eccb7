// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"time"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyCart is returned by PlaceOrder when the cart has no items.
	// Nothing is persisted in that case.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound is returned when no order has the requested id
	ErrOrderNotFound = errors.New("order not found")
)

// Profiles resolves the shopper a session belongs to
type Profiles interface {
	GetProfile(ctx context.Context, sessionID string) *user.User
}

// Service handles order business logic
type Service struct {
	docs    *storage.Documents
	carts   *cart.Service
	users   Profiles
	pricing Pricing
	ids     IDGenerator
	now     func() time.Time
	events  tracking.Emitter
	log     logrus.FieldLogger
}

// NewService creates a new order service. Orders are attributed to the demo
// user when users is nil.
func NewService(store storage.Store, carts *cart.Service, users Profiles, pricing Pricing, events tracking.Emitter, log logrus.FieldLogger) *Service {
	if events == nil {
		events = tracking.Nop{}
	}
	return &Service{
		docs:    storage.NewDocuments(store, log),
		carts:   carts,
		users:   users,
		pricing: pricing,
		ids:     NewIDGenerator(),
		now:     time.Now,
		events:  events,
		log:     log,
	}
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	ShippingAddress Address `json:"shipping_address" binding:"required"`
}

// PlaceOrder turns the session's cart into a confirmed order, prepends it to
// the session's order history and clears the cart. The order keeps its own
// copy of the cart lines.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, address Address) (*Order, error) {
	c := s.carts.GetCart(ctx, sessionID)
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	quote := s.pricing.Quote(c.Total)
	createdAt := s.now().UTC()

	o := &Order{
		ID:                s.ids.OrderID(),
		OrderNumber:       s.ids.OrderNumber(),
		UserID:            s.userID(ctx, sessionID),
		Items:             c.Clone().Items,
		Subtotal:          quote.Subtotal,
		Shipping:          quote.Shipping,
		Tax:               quote.Tax,
		Total:             quote.Total,
		Status:            OrderStatusConfirmed,
		ShippingAddress:   address,
		TrackingNumber:    s.ids.TrackingNumber(),
		EstimatedDelivery: createdAt.Add(DeliveryWindow),
		CreatedAt:         createdAt,
	}

	orders := append([]Order{*o.Clone()}, s.ListOrders(ctx, sessionID)...)
	if err := s.docs.Save(ctx, storage.Key(sessionID, storage.DocOrders), orders); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id":   sessionID,
			"order_number": o.OrderNumber,
		}).Warn("Order was not persisted")
	}

	s.carts.Clear(ctx, sessionID)

	s.log.WithFields(logrus.Fields{
		"session_id":   sessionID,
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
		"total":        o.Total.StringFixed(2),
	}).Info("Order placed")

	s.events.Emit(ctx, tracking.New(tracking.EventOrderComplete, sessionID, map[string]any{
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
		"total":        o.Total,
		"item_count":   o.ItemCount(),
	}))

	return o, nil
}

// ListOrders returns the session's orders, newest first
func (s *Service) ListOrders(ctx context.Context, sessionID string) []Order {
	var orders []Order
	if !s.docs.Load(ctx, storage.Key(sessionID, storage.DocOrders), &orders) || orders == nil {
		return []Order{}
	}
	return orders
}

// GetOrder retrieves a single order by id
func (s *Service) GetOrder(ctx context.Context, sessionID, id string) (*Order, error) {
	for _, o := range s.ListOrders(ctx, sessionID) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *Service) userID(ctx context.Context, sessionID string) string {
	if s.users == nil {
		return user.DemoUserID
	}
	return s.users.GetProfile(ctx, sessionID).ID
}
