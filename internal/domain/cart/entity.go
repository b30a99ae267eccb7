// internal/domain/cart/entity.go
package cart

import (
	"github.com/hfashion/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// CartItem is one cart line. Name, price and image are copied from the
// product when the line is created and never follow later catalog changes.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      *string         `json:"size"`
	Color     *string         `json:"color"`
	ImageURL  string          `json:"image_url"`
}

// Matches reports whether the line holds productID in the given variant
func (i *CartItem) Matches(productID string, size, color *string) bool {
	return i.ProductID == productID && sameVariant(i.Size, size) && sameVariant(i.Color, color)
}

// LineTotal returns price × quantity, unrounded
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a copy sharing no memory with i
func (i CartItem) Clone() CartItem {
	i.Size = cloneString(i.Size)
	i.Color = cloneString(i.Color)
	return i
}

// Cart is a session's shopping cart. Total is derived from the items and is
// recalculated after every mutation.
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Empty returns a cart with no items
func Empty() *Cart {
	return &Cart{Items: []CartItem{}, Total: money.Zero}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the sum of line quantities
func (c *Cart) ItemCount() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Recalculate sets Total to the sum of line totals, rounded to cents once
func (c *Cart) Recalculate() {
	lines := make([]decimal.Decimal, len(c.Items))
	for i := range c.Items {
		lines[i] = c.Items[i].LineTotal()
	}
	c.Total = money.Sum(lines...)
}

// Clone returns a deep copy of the cart
func (c *Cart) Clone() *Cart {
	out := &Cart{Items: make([]CartItem, len(c.Items)), Total: c.Total}
	for i, item := range c.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

func (c *Cart) find(productID string, size, color *string) int {
	for i := range c.Items {
		if c.Items[i].Matches(productID, size, color) {
			return i
		}
	}
	return -1
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
