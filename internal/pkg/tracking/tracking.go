// internal/pkg/tracking/tracking.go
package tracking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Event names emitted by the storefront
const (
	EventCartAdd        = "cart_add"
	EventCartUpdate     = "cart_update"
	EventCartRemove     = "cart_remove"
	EventCartClear      = "cart_clear"
	EventCheckout       = "checkout_progress"
	EventCheckoutChoice = "checkout_selection"
	EventOrderComplete  = "order_complete"
	EventWishlistAdd    = "wishlist_add"
	EventWishlistRemove = "wishlist_remove"
	EventSearch         = "search"
	EventFilterApplied  = "filter_applied"
	EventProductView    = "product_view"
)

// Event is a single analytics notification
type Event struct {
	Name      string         `json:"name"`
	SessionID string         `json:"session_id,omitempty"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

// New creates an event stamped with the current time
func New(name, sessionID string, data map[string]any) Event {
	if data == nil {
		data = map[string]any{}
	}
	return Event{
		Name:      name,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Emitter receives events after state changes. Emit must not block for long
// and never fails the operation that produced the event.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// Nop discards every event
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}

// Multi fans an event out to several emitters in order
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, e Event) {
	for _, em := range m {
		em.Emit(ctx, e)
	}
}

// Logger writes events to a logrus logger at debug level
type Logger struct {
	Log logrus.FieldLogger
}

func (l Logger) Emit(_ context.Context, e Event) {
	l.Log.WithFields(logrus.Fields{
		"event":      e.Name,
		"session_id": e.SessionID,
		"data":       e.Data,
	}).Debug("Tracking event")
}
