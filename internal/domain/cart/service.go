// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned by AddItem when the product id does not
// resolve; the cart is left unchanged.
var ErrProductNotFound = errors.New("product not found")

// Catalog resolves products at add time
type Catalog interface {
	Get(id string) (*product.Product, error)
}

// Service handles cart business logic. Every mutation is a read-modify-write
// of the session's cart document with no isolation between writers; the last
// write wins.
type Service struct {
	docs    *storage.Documents
	catalog Catalog
	events  tracking.Emitter
	log     logrus.FieldLogger
}

// NewService creates a new cart service
func NewService(store storage.Store, catalog Catalog, events tracking.Emitter, log logrus.FieldLogger) *Service {
	if events == nil {
		events = tracking.Nop{}
	}
	return &Service{
		docs:    storage.NewDocuments(store, log),
		catalog: catalog,
		events:  events,
		log:     log,
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

// UpdateItemRequest represents update cart item request. A quantity of zero
// or less removes the item.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the session's cart, or an empty cart when none is stored
// or the stored one cannot be read
func (s *Service) GetCart(ctx context.Context, sessionID string) *Cart {
	c := Empty()
	if !s.docs.Load(ctx, storage.Key(sessionID, storage.DocCart), c) {
		return Empty()
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	return c
}

// AddItem adds quantity units of a product variant. An existing line with
// the same product, size and color is incremented in place; otherwise a new
// line snapshotting the product is appended. Quantities below 1 count as 1.
func (s *Service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*Cart, error) {
	prod, err := s.catalog.Get(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	size, color := normalize(req.Size), normalize(req.Color)

	c := s.GetCart(ctx, sessionID)
	if i := c.find(prod.ID, size, color); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, CartItem{
			ProductID: prod.ID,
			Name:      prod.Name,
			Price:     prod.Price,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
			ImageURL:  prod.ImageURL,
		})
	}

	s.commit(ctx, sessionID, c, tracking.EventCartAdd)
	return c, nil
}

// UpdateItemQuantity sets the quantity of the first line holding productID.
// A quantity of zero or less removes every line of that product regardless
// of variant. Unknown products leave the cart unchanged.
func (s *Service) UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) *Cart {
	c := s.GetCart(ctx, sessionID)

	event := tracking.EventCartUpdate
	if quantity <= 0 {
		event = tracking.EventCartRemove
		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		c.Items = kept
	} else {
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Quantity = quantity
				break
			}
		}
	}

	s.commit(ctx, sessionID, c, event)
	return c
}

// UpdateLine is UpdateItemQuantity restricted to the line with the exact
// product, size and color
func (s *Service) UpdateLine(ctx context.Context, sessionID, productID string, size, color *string, quantity int) *Cart {
	size, color = normalize(size), normalize(color)
	c := s.GetCart(ctx, sessionID)

	event := tracking.EventCartUpdate
	if i := c.find(productID, size, color); i >= 0 {
		if quantity <= 0 {
			event = tracking.EventCartRemove
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
	}

	s.commit(ctx, sessionID, c, event)
	return c
}

// RemoveItem removes every line of productID. Removing an absent product is
// a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) *Cart {
	return s.UpdateItemQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, sessionID string) *Cart {
	c := Empty()
	s.commit(ctx, sessionID, c, tracking.EventCartClear)
	return c
}

// ItemCount returns the number of units in the cart
func (s *Service) ItemCount(ctx context.Context, sessionID string) int {
	return s.GetCart(ctx, sessionID).ItemCount()
}

// commit recalculates the total, persists the cart and emits a tracking
// event. A failed write is logged; the caller still gets the computed cart.
func (s *Service) commit(ctx context.Context, sessionID string, c *Cart, event string) {
	c.Recalculate()

	if err := s.docs.Save(ctx, storage.Key(sessionID, storage.DocCart), c); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"event":      event,
		}).Warn("Cart change was not persisted")
	}

	items := make([]map[string]any, len(c.Items))
	for i, item := range c.Items {
		items[i] = map[string]any{
			"id":    item.ProductID,
			"name":  item.Name,
			"price": item.Price,
			"qty":   item.Quantity,
		}
	}

	s.events.Emit(ctx, tracking.New(event, sessionID, map[string]any{
		"cart_value": c.Total,
		"item_count": c.ItemCount(),
		"items":      items,
	}))
}

func normalize(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return cloneString(v)
}
