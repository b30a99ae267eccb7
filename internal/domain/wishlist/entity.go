package wishlist

import (
	"time"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// WishlistItem is a saved product, snapshotted when it was added
type WishlistItem struct {
	ProductID     string              `json:"product_id"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	ImageURL      string              `json:"image_url"`
	Category      product.Category    `json:"category"`
	AddedAt       time.Time           `json:"added_at"`
}

// Wishlist is a session's saved products in the order they were added
type Wishlist struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

func newWishlist(items []WishlistItem) *Wishlist {
	if items == nil {
		items = []WishlistItem{}
	}
	return &Wishlist{Items: items, Count: len(items)}
}

// Contains reports whether productID is saved
func (w *Wishlist) Contains(productID string) bool {
	return w.index(productID) >= 0
}

func (w *Wishlist) index(productID string) int {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
