// internal/domain/product/seed.go
package product

import (
	"github.com/shopspring/decimal"
)

func image(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/600/800"
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func originalPrice(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// Seed returns the storefront catalog in display order
func Seed() []Product {
	products := []Product{
		{
			ID:            "prod-001",
			Name:          "Nordic Knit Cardigan",
			Description:   "Cozy brown cardigan with elegant white nordic pattern. Perfect for layering in autumn and winter.",
			Price:         price("129.00"),
			OriginalPrice: originalPrice("159.00"),
			Category:      CategoryNewArrivals,
			ImageURL:      image("cardigan"),
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Brown", "Navy", "Cream"},
			Stock:         10,
			IsFeatured:    true,
			IsTrending:    true,
		},
		{
			ID:          "prod-002",
			Name:        "Sage Collar Sweater",
			Description: "Soft knit sweater with delicate collar detail. A timeless piece for any wardrobe.",
			Price:       price("89.00"),
			Category:    CategoryNewArrivals,
			ImageURL:    image("sweater"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Sage", "Ivory", "Blush"},
			Stock:       15,
			IsFeatured:  true,
		},
		{
			ID:            "prod-003",
			Name:          "Stacked Knit Collection",
			Description:   "Set of layered knit sweaters in earth tones. Mix and match for endless styling options.",
			Price:         price("199.00"),
			OriginalPrice: originalPrice("249.00"),
			Category:      CategoryNewArrivals,
			ImageURL:      image("knitwear"),
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"Multi"},
			Stock:         8,
			IsTrending:    true,
		},
		{
			ID:          "prod-004",
			Name:        "Textured Knit Duo",
			Description: "Two-piece textured knit set in neutral tones. Elegant and comfortable.",
			Price:       price("159.00"),
			Category:    CategoryNewArrivals,
			ImageURL:    image("texture"),
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Taupe", "Olive"},
			Stock:       12,
		},
		{
			ID:          "prod-005",
			Name:        "Blue Pattern Kurta",
			Description: "Stylish blue patterned kurta with modern fit. Perfect for casual and semi-formal occasions.",
			Price:       price("79.00"),
			Category:    CategoryMen,
			ImageURL:    image("menblue"),
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Blue", "Black"},
			Stock:       20,
			IsFeatured:  true,
		},
		{
			ID:            "prod-006",
			Name:          "Geometric Print Shirt",
			Description:   "Bold geometric print shirt for the fashion-forward man. Stand out in any crowd.",
			Price:         price("69.00"),
			OriginalPrice: originalPrice("89.00"),
			Category:      CategoryMen,
			ImageURL:      image("shirt"),
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Multi"},
			Stock:         18,
			IsTrending:    true,
		},
		{
			ID:            "prod-007",
			Name:          "Classic Three-Piece Suit",
			Description:   "Timeless charcoal three-piece suit. Impeccable tailoring for the modern gentleman.",
			Price:         price("449.00"),
			OriginalPrice: originalPrice("549.00"),
			Category:      CategoryMen,
			ImageURL:      image("suit"),
			Sizes:         []string{"38", "40", "42", "44", "46"},
			Colors:        []string{"Charcoal", "Navy", "Black"},
			Stock:         5,
			IsFeatured:    true,
		},
		{
			ID:          "prod-008",
			Name:        "Terracotta Cord Jacket",
			Description: "Vintage-inspired corduroy jacket in warm terracotta. A statement piece for fall.",
			Price:       price("189.00"),
			Category:    CategoryMen,
			ImageURL:    image("jacket"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Terracotta", "Forest Green"},
			Stock:       10,
		},
		{
			ID:          "prod-009",
			Name:        "Sleeveless White Blouse",
			Description: "Crisp white sleeveless blouse with elegant draping. Essential for any wardrobe.",
			Price:       price("59.00"),
			Category:    CategoryWomen,
			ImageURL:    image("blouse"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"White", "Ivory", "Blush"},
			Stock:       25,
			IsFeatured:  true,
		},
		{
			ID:            "prod-010",
			Name:          "Ribbed Knit Dress",
			Description:   "Form-fitting ribbed dress with elegant side slit. Sophisticated and comfortable.",
			Price:         price("119.00"),
			OriginalPrice: originalPrice("149.00"),
			Category:      CategoryWomen,
			ImageURL:      image("dress1"),
			Sizes:         []string{"XS", "S", "M", "L"},
			Colors:        []string{"Cream", "Black", "Taupe"},
			Stock:         14,
			IsTrending:    true,
		},
		{
			ID:          "prod-011",
			Name:        "City Sky Dress",
			Description: "Modern silhouette dress perfect for urban adventures. Effortlessly chic.",
			Price:       price("139.00"),
			Category:    CategoryWomen,
			ImageURL:    image("dress2"),
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Sky Blue", "Charcoal"},
			Stock:       16,
		},
		{
			ID:            "prod-012",
			Name:          "Linen Maxi Dress",
			Description:   "Flowing linen maxi dress with puff sleeves. Perfect for summer days.",
			Price:         price("159.00"),
			OriginalPrice: originalPrice("199.00"),
			Category:      CategoryWomen,
			ImageURL:      image("maxi"),
			Sizes:         []string{"XS", "S", "M", "L"},
			Colors:        []string{"Natural", "Sage", "Terracotta"},
			Stock:         11,
			IsFeatured:    true,
		},
		{
			ID:          "prod-013",
			Name:        "Cream Leather Clutch",
			Description: "Elegant cream leather clutch with gold hardware. Perfect for evening occasions.",
			Price:       price("89.00"),
			Category:    CategoryAccessories,
			ImageURL:    image("clutch"),
			Sizes:       []string{},
			Colors:      []string{"Cream", "Black", "Tan"},
			Stock:       30,
			IsTrending:  true,
		},
		{
			ID:            "prod-014",
			Name:          "Statement Jewelry Set",
			Description:   "Curated jewelry display featuring rings, necklaces, and bracelets.",
			Price:         price("149.00"),
			OriginalPrice: originalPrice("189.00"),
			Category:      CategoryAccessories,
			ImageURL:      image("jewelry"),
			Sizes:         []string{},
			Colors:        []string{"Gold", "Silver"},
			Stock:         22,
			IsFeatured:    true,
		},
		{
			ID:          "prod-015",
			Name:        "Designer Sunglasses",
			Description: "Bold statement sunglasses with modern frames. UV protection with style.",
			Price:       price("129.00"),
			Category:    CategoryAccessories,
			ImageURL:    image("sunglasses"),
			Sizes:       []string{},
			Colors:      []string{"Black", "Tortoise"},
			Stock:       35,
		},
		{
			ID:          "prod-016",
			Name:        "Cognac Leather Belt",
			Description: "Premium leather belt with classic buckle. Timeless craftsmanship.",
			Price:       price("79.00"),
			Category:    CategoryAccessories,
			ImageURL:    image("belt"),
			Sizes:       []string{"30", "32", "34", "36", "38"},
			Colors:      []string{"Cognac", "Black"},
			Stock:       40,
		},
		{
			ID:            "prod-017",
			Name:          "Classic Leather Watch",
			Description:   "Minimalist watch with black leather strap. Elegant timekeeping.",
			Price:         price("199.00"),
			OriginalPrice: originalPrice("249.00"),
			Category:      CategoryAccessories,
			ImageURL:      image("watch"),
			Sizes:         []string{},
			Colors:        []string{"Black", "Brown"},
			Stock:         18,
			IsFeatured:    true,
		},
		{
			ID:          "prod-018",
			Name:        "Gold Statement Ring",
			Description: "Bold gold ring with modern geometric design. Make a statement.",
			Price:       price("69.00"),
			Category:    CategoryAccessories,
			ImageURL:    image("ring"),
			Sizes:       []string{"5", "6", "7", "8"},
			Colors:      []string{"Gold", "Rose Gold"},
			Stock:       50,
		},
	}

	for i := range products {
		products[i].Position = i + 1
	}
	return products
}
