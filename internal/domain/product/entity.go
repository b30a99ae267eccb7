// internal/domain/product/entity.go
package product

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed storefront departments
type Category string

const (
	CategoryNewArrivals Category = "new-arrivals"
	CategoryMen         Category = "men"
	CategoryWomen       Category = "women"
	CategoryAccessories Category = "accessories"
)

var categoryLabels = map[Category]string{
	CategoryNewArrivals: "New Arrivals",
	CategoryMen:         "Men's",
	CategoryWomen:       "Women's",
	CategoryAccessories: "Accessories",
}

// Categories lists every department in navigation order
var Categories = []Category{CategoryNewArrivals, CategoryMen, CategoryWomen, CategoryAccessories}

// Label returns the display label of the category
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is a known department
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Product represents a catalog entry. Products are seeded once and never
// mutated afterwards.
type Product struct {
	ID            string              `gorm:"primaryKey;size:64" json:"id"`
	Name          string              `gorm:"not null;size:255" json:"name"`
	Description   string              `gorm:"type:text" json:"description"`
	Price         decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"original_price"`
	Category      Category            `gorm:"not null;size:32;index" json:"category"`
	ImageURL      string              `gorm:"size:500" json:"image_url"`
	Sizes         []string            `gorm:"serializer:json;type:text" json:"sizes"`
	Colors        []string            `gorm:"serializer:json;type:text" json:"colors"`
	Stock         int                 `gorm:"not null" json:"stock"`
	IsFeatured    bool                `gorm:"not null" json:"is_featured"`
	IsTrending    bool                `gorm:"not null" json:"is_trending"`
	Position      int                 `gorm:"not null;index" json:"-"` // catalog order
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// OnSale reports whether the product is discounted from its original price
func (p *Product) OnSale() bool {
	return p.OriginalPrice.Valid && p.OriginalPrice.Decimal.GreaterThan(p.Price)
}

// DiscountPercent returns the whole-number discount from the original price
func (p *Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	off := p.OriginalPrice.Decimal.Sub(p.Price).Div(p.OriginalPrice.Decimal).Mul(decimal.NewFromInt(100))
	return int(off.Round(0).IntPart())
}

// InStock reports whether any units are available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) clone() Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	return p
}

// CategoryInfo describes a department for navigation
type CategoryInfo struct {
	Slug  Category `json:"slug"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}
