package wishlist

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/hfashion/storefront/internal/pkg/tracking"
	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned by Add when the product id does not resolve
var ErrProductNotFound = errors.New("product not found")

// Catalog resolves products at add time
type Catalog interface {
	Get(id string) (*product.Product, error)
}

// Service handles wishlist business logic
type Service struct {
	docs    *storage.Documents
	catalog Catalog
	events  tracking.Emitter
	now     func() time.Time
	log     logrus.FieldLogger
}

// NewService creates a new wishlist service
func NewService(store storage.Store, catalog Catalog, events tracking.Emitter, log logrus.FieldLogger) *Service {
	if events == nil {
		events = tracking.Nop{}
	}
	return &Service{
		docs:    storage.NewDocuments(store, log),
		catalog: catalog,
		events:  events,
		now:     time.Now,
		log:     log,
	}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist returns the session's wishlist
func (s *Service) GetWishlist(ctx context.Context, sessionID string) *Wishlist {
	var items []WishlistItem
	if !s.docs.Load(ctx, storage.Key(sessionID, storage.DocWishlist), &items) {
		return newWishlist(nil)
	}
	return newWishlist(items)
}

// Add saves a product. Adding a product that is already saved leaves the
// wishlist unchanged and reports added as false.
func (s *Service) Add(ctx context.Context, sessionID, productID string) (w *Wishlist, added bool, err error) {
	prod, err := s.catalog.Get(productID)
	if err != nil {
		return nil, false, ErrProductNotFound
	}

	w = s.GetWishlist(ctx, sessionID)
	if w.Contains(prod.ID) {
		return w, false, nil
	}

	w = newWishlist(append(w.Items, WishlistItem{
		ProductID:     prod.ID,
		Name:          prod.Name,
		Price:         prod.Price,
		OriginalPrice: prod.OriginalPrice,
		ImageURL:      prod.ImageURL,
		Category:      prod.Category,
		AddedAt:       s.now().UTC(),
	}))
	s.commit(ctx, sessionID, w, tracking.EventWishlistAdd, prod.ID)
	return w, true, nil
}

// Remove drops a product from the wishlist. Removing an absent product is a
// no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) *Wishlist {
	w := s.GetWishlist(ctx, sessionID)
	i := w.index(productID)
	if i < 0 {
		return w
	}

	w = newWishlist(slices.Delete(w.Items, i, i+1))
	s.commit(ctx, sessionID, w, tracking.EventWishlistRemove, productID)
	return w
}

// Toggle removes a saved product or adds an unsaved one
func (s *Service) Toggle(ctx context.Context, sessionID, productID string) (*Wishlist, bool, error) {
	if s.GetWishlist(ctx, sessionID).Contains(productID) {
		return s.Remove(ctx, sessionID, productID), false, nil
	}
	return s.Add(ctx, sessionID, productID)
}

// Clear empties the wishlist
func (s *Service) Clear(ctx context.Context, sessionID string) *Wishlist {
	w := newWishlist(nil)
	if err := s.docs.Save(ctx, storage.Key(sessionID, storage.DocWishlist), w.Items); err != nil {
		s.log.WithField("session_id", sessionID).Warn("Wishlist change was not persisted")
	}
	return w
}

func (s *Service) commit(ctx context.Context, sessionID string, w *Wishlist, event, productID string) {
	if err := s.docs.Save(ctx, storage.Key(sessionID, storage.DocWishlist), w.Items); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"event":      event,
		}).Warn("Wishlist change was not persisted")
	}

	s.events.Emit(ctx, tracking.New(event, sessionID, map[string]any{
		"product_id":     productID,
		"wishlist_count": w.Count,
	}))
}
