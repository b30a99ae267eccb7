// internal/pkg/money/money.go
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	// Monetary fields travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Zero is the zero amount
var Zero = decimal.Zero

// Cents rounds an amount to 2 decimal places
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MustParse parses a decimal literal, panicking on malformed input.
// Only meant for constants and seed data.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Sum adds amounts and rounds the result to cents once, after summation
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Cents(total)
}

var usd = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount as US currency, e.g. $1,234.50
func Format(d decimal.Decimal) string {
	d = Cents(d)
	if d.IsNegative() {
		return "-$" + usd.Sprintf("%.2f", d.Neg().InexactFloat64())
	}
	return "$" + usd.Sprintf("%.2f", d.InexactFloat64())
}
