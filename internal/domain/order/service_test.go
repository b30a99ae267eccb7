package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "sess-1"

var placedAt = time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC)

type sequentialIDs struct{ n int }

func (g *sequentialIDs) OrderID() string {
	g.n++
	return fmt.Sprintf("order-%d", g.n)
}
func (g *sequentialIDs) OrderNumber() string    { return fmt.Sprintf("HF-%08d", g.n) }
func (g *sequentialIDs) TrackingNumber() string { return fmt.Sprintf("1Z%09d", 100000000+g.n) }

type fixture struct {
	carts  *cart.Service
	orders *Service
	events *tracking.Recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := storage.NewMemory()
	events := tracking.NewRecorder(0)

	carts := cart.NewService(store, product.NewService(product.Seed()), events, log)
	orders := NewService(store, carts, nil, DefaultPricing(), events, log)
	orders.ids = &sequentialIDs{}
	orders.now = func() time.Time { return placedAt }

	return fixture{carts: carts, orders: orders, events: events}
}

func (f fixture) add(t *testing.T, id string, qty int) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), session, cart.AddItemRequest{ProductID: id, Quantity: qty})
	require.NoError(t, err)
}

func address() Address {
	return Address{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Analytical Way",
		City:      "Brooklyn",
		State:     "NY",
		ZipCode:   "11201",
		Phone:     "555-0100",
	}
}

func TestPlaceOrderBelowFreeShipping(t *testing.T) {
	f := newFixture(t)
	f.add(t, "prod-006", 1) // 69.00

	o, err := f.orders.PlaceOrder(context.Background(), session, address())
	require.NoError(t, err)

	assert.Equal(t, "69.00", o.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", o.Shipping.StringFixed(2))
	assert.Equal(t, "5.52", o.Tax.StringFixed(2))
	assert.Equal(t, "84.51", o.Total.StringFixed(2))
	assert.False(t, o.FreeShipping())
}

func TestPlaceOrderPopulatesEveryField(t *testing.T) {
	f := newFixture(t)
	f.add(t, "prod-001", 2)

	o, err := f.orders.PlaceOrder(context.Background(), session, address())
	require.NoError(t, err)

	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "HF-00000001", o.OrderNumber)
	assert.Equal(t, user.DemoUserID, o.UserID)
	assert.Equal(t, "1Z100000001", o.TrackingNumber)
	assert.Equal(t, OrderStatusConfirmed, o.Status)
	assert.Equal(t, placedAt, o.CreatedAt)
	assert.Equal(t, placedAt.AddDate(0, 0, 7), o.EstimatedDelivery)
	assert.Equal(t, address(), o.ShippingAddress)
	assert.Equal(t, 2, o.ItemCount())
	assert.Equal(t, "258.00", o.Subtotal.StringFixed(2))
	assert.True(t, o.FreeShipping())
	assert.Equal(t, "20.64", o.Tax.StringFixed(2))
	assert.Equal(t, "278.64", o.Total.StringFixed(2))
}

type sessionProfiles map[string]string

func (p sessionProfiles) GetProfile(_ context.Context, sessionID string) *user.User {
	return &user.User{ID: p[sessionID]}
}

func TestPlaceOrderAttributesSessionProfile(t *testing.T) {
	f := newFixture(t)
	f.orders.users = sessionProfiles{session: "user-42"}
	f.add(t, "prod-002", 1)

	o, err := f.orders.PlaceOrder(context.Background(), session, address())
	require.NoError(t, err)
	assert.Equal(t, "user-42", o.UserID)

	stored, err := f.orders.GetOrder(context.Background(), session, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-42", stored.UserID)
}

func TestPlaceOrderClearsCartAndPrependsOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.add(t, "prod-002", 1)
	first, err := f.orders.PlaceOrder(ctx, session, address())
	require.NoError(t, err)
	assert.True(t, f.carts.GetCart(ctx, session).IsEmpty())

	f.add(t, "prod-003", 1)
	second, err := f.orders.PlaceOrder(ctx, session, address())
	require.NoError(t, err)

	orders := f.orders.ListOrders(ctx, session)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestPlaceOrderEmptyCartHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.add(t, "prod-004", 1)
	_, err := f.orders.PlaceOrder(ctx, session, address())
	require.NoError(t, err)
	eventsBefore := len(f.events.Events())

	o, err := f.orders.PlaceOrder(ctx, session, address())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, o)
	assert.Len(t, f.orders.ListOrders(ctx, session), 1)
	assert.Len(t, f.events.Events(), eventsBefore)
}

func TestPlacedOrderIsIsolatedFromLaterCartChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	size := "M"
	_, err := f.carts.AddItem(ctx, session, cart.AddItemRequest{ProductID: "prod-010", Size: &size})
	require.NoError(t, err)

	o, err := f.orders.PlaceOrder(ctx, session, address())
	require.NoError(t, err)

	// mutate the returned order and keep shopping
	*o.Items[0].Size = "XL"
	o.Items[0].Quantity = 99
	_, err = f.carts.AddItem(ctx, session, cart.AddItemRequest{ProductID: "prod-010", Size: &size, Quantity: 3})
	require.NoError(t, err)

	stored, err := f.orders.GetOrder(ctx, session, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "M", *stored.Items[0].Size)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, "119.00", stored.Subtotal.StringFixed(2))
}

func TestGetOrderNotFound(t *testing.T) {
	f := newFixture(t)

	o, err := f.orders.GetOrder(context.Background(), session, "order-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, o)
}

func TestListOrdersEmpty(t *testing.T) {
	f := newFixture(t)

	orders := f.orders.ListOrders(context.Background(), session)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestPlaceOrderEmitsOrderComplete(t *testing.T) {
	f := newFixture(t)
	f.add(t, "prod-013", 2)

	o, err := f.orders.PlaceOrder(context.Background(), session, address())
	require.NoError(t, err)

	events := f.events.Events()
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, tracking.EventOrderComplete, events[0].Name)
	assert.Equal(t, o.OrderNumber, events[0].Data["order_number"])
	assert.Equal(t, 2, events[0].Data["item_count"])
	assert.Equal(t, tracking.EventCartClear, events[1].Name)
}

func TestProductionIDFormats(t *testing.T) {
	ids := NewIDGenerator()

	assert.Regexp(t, `^order-[0-9a-f-]{36}$`, ids.OrderID())
	assert.NotEqual(t, ids.OrderID(), ids.OrderID())
	assert.Regexp(t, `^HF-[A-Z0-9]{8}$`, ids.OrderNumber())
	assert.Regexp(t, `^1Z[1-9][0-9]{8}$`, ids.TrackingNumber())
}
