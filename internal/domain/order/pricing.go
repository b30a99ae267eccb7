// internal/domain/order/pricing.go
package order

import (
	"github.com/hfashion/storefront/internal/config"
	"github.com/hfashion/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Pricing holds the checkout charges applied on top of the cart subtotal
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

// Quote is the monetary breakdown of an order
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// DefaultPricing returns the storefront's standard charges: free shipping
// from 100.00, otherwise 9.99, and 8% tax
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: money.MustParse("100"),
		FlatShippingFee:       money.MustParse("9.99"),
		TaxRate:               money.MustParse("0.08"),
	}
}

// PricingFromConfig builds Pricing from configuration
func PricingFromConfig(cfg config.PricingConfig) Pricing {
	return Pricing{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		TaxRate:               cfg.TaxRate,
	}
}

// Quote prices a subtotal. Tax is rounded to cents on its own and the total
// is rounded once after summation.
func (p Pricing) Quote(subtotal decimal.Decimal) Quote {
	shipping := money.Zero
	if subtotal.LessThan(p.FreeShippingThreshold) {
		shipping = p.FlatShippingFee
	}
	tax := money.Cents(subtotal.Mul(p.TaxRate))

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    money.Sum(subtotal, shipping, tax),
	}
}
