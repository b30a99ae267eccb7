package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "sess-1"

func str(s string) *string { return &s }

func newTestService(t *testing.T, store storage.Store) (*Service, *tracking.Recorder) {
	t.Helper()
	log, _ := test.NewNullLogger()
	rec := tracking.NewRecorder(0)
	return NewService(store, product.NewService(product.Seed()), rec, log), rec
}

type brokenStore struct{}

func (brokenStore) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}
func (brokenStore) Write(context.Context, string, []byte) error {
	return errors.New("disk unavailable")
}

func TestGetCartEmptyWhenNothingStored(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemory())

	c := svc.GetCart(context.Background(), session)
	assert.NotNil(t, c.Items)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total.IsZero())
}

func TestGetCartEmptyWhenStoredCartIsCorrupt(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Write(context.Background(), storage.Key(session, storage.DocCart), []byte("not json")))
	svc, _ := newTestService(t, mem)

	assert.True(t, svc.GetCart(context.Background(), session).IsEmpty())
}

func TestAddItemMergesSameVariant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	c, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "129.00", c.Total.StringFixed(2))

	c, err = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, "387.00", c.Total.StringFixed(2))

	// persisted
	stored := svc.GetCart(ctx, session)
	assert.Equal(t, "387.00", stored.Total.StringFixed(2))
	assert.Equal(t, 3, svc.ItemCount(ctx, session))
}

func TestAddItemDistinctVariantsAreDistinctLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Size: str("M"), Color: str("Navy")})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-002"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Size: str("L"), Color: str("Navy")})
	require.NoError(t, err)
	c, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Size: str("M"), Color: str("Navy"), Quantity: 4})
	require.NoError(t, err)

	require.Len(t, c.Items, 3)
	// merged line keeps its position
	assert.Equal(t, "prod-001", c.Items[0].ProductID)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, "prod-002", c.Items[1].ProductID)
	assert.Equal(t, "L", *c.Items[2].Size)
	assert.Equal(t, "863.00", c.Total.StringFixed(2))
}

func TestAddItemDefaultsQuantityAndNormalizesVariant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-015", Color: str("")})
	require.NoError(t, err)
	c, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-015", Quantity: -3})
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Nil(t, c.Items[0].Color)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItemUnknownProductLeavesCartUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-002"})
	require.NoError(t, err)

	c, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-999"})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, c)

	assert.Len(t, svc.GetCart(ctx, session).Items, 1)
	assert.Len(t, rec.Events(), 1)
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	c, err := svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-009", Size: str("S")})
	require.NoError(t, err)

	item := c.Items[0]
	assert.Equal(t, "Sleeveless White Blouse", item.Name)
	assert.Equal(t, "59.00", item.Price.StringFixed(2))
	assert.Equal(t, "https://picsum.photos/seed/blouse/600/800", item.ImageURL)
}

func TestUpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("M")})
	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("L")})

	// absolute, first matching line only
	c := svc.UpdateItemQuantity(ctx, session, "prod-005", 4)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, "395.00", c.Total.StringFixed(2))

	// unknown product is a no-op
	before := svc.GetCart(ctx, session)
	c = svc.UpdateItemQuantity(ctx, session, "prod-999", 5)
	assert.Equal(t, before.Items, c.Items)
	assert.True(t, before.Total.Equal(c.Total))
}

func TestZeroQuantityRemovesEveryVariantLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("M")})
	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-006"})
	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("L")})

	c := svc.UpdateItemQuantity(ctx, session, "prod-005", 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "prod-006", c.Items[0].ProductID)
	assert.Equal(t, "69.00", c.Total.StringFixed(2))
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001"})
	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-002"})

	first := svc.RemoveItem(ctx, session, "prod-001")
	second := svc.RemoveItem(ctx, session, "prod-001")
	viaUpdate := svc.UpdateItemQuantity(ctx, session, "prod-001", -1)

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Items, viaUpdate.Items)
	assert.Equal(t, "89.00", second.Total.StringFixed(2))
}

func TestUpdateLineMatchesExactVariant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("M")})
	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-005", Size: str("L")})

	c := svc.UpdateLine(ctx, session, "prod-005", str("L"), nil, 3)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 3, c.Items[1].Quantity)

	c = svc.UpdateLine(ctx, session, "prod-005", str("M"), nil, 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "L", *c.Items[0].Size)
	assert.Equal(t, "237.00", c.Total.StringFixed(2))

	c = svc.UpdateLine(ctx, session, "prod-005", str("XL"), nil, 9)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-001", Quantity: 2})
	c := svc.Clear(ctx, session)
	assert.True(t, c.IsEmpty())
	assert.True(t, svc.GetCart(ctx, session).IsEmpty())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, tracking.EventCartClear, last.Name)
	assert.Equal(t, 0, last.Data["item_count"])
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, "a", AddItemRequest{ProductID: "prod-001"})
	assert.True(t, svc.GetCart(ctx, "b").IsEmpty())
}

func TestWriteFailureStillReturnsComputedCart(t *testing.T) {
	svc, rec := newTestService(t, brokenStore{})

	c, err := svc.AddItem(context.Background(), session, AddItemRequest{ProductID: "prod-001", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "258.00", c.Total.StringFixed(2))
	assert.Len(t, rec.Events(), 1)

	// reads degrade to an empty cart
	assert.True(t, svc.GetCart(context.Background(), session).IsEmpty())
}

func TestEventsCarryCartSummary(t *testing.T) {
	ctx := context.Background()
	svc, rec := newTestService(t, storage.NewMemory())

	_, _ = svc.AddItem(ctx, session, AddItemRequest{ProductID: "prod-002", Quantity: 2})
	svc.UpdateItemQuantity(ctx, session, "prod-002", 5)
	svc.RemoveItem(ctx, session, "prod-002")

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, tracking.EventCartRemove, events[0].Name)
	assert.Equal(t, tracking.EventCartUpdate, events[1].Name)
	assert.Equal(t, 5, events[1].Data["item_count"])
	assert.Equal(t, tracking.EventCartAdd, events[2].Name)
	assert.Equal(t, session, events[2].SessionID)
}

func TestCloneSharesNoMemory(t *testing.T) {
	c := &Cart{Items: []CartItem{{ProductID: "p", Size: str("M"), Quantity: 1}}}
	cp := c.Clone()

	*cp.Items[0].Size = "L"
	cp.Items[0].Quantity = 7

	assert.Equal(t, "M", *c.Items[0].Size)
	assert.Equal(t, 1, c.Items[0].Quantity)
}
