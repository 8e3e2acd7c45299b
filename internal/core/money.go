// Money handling for subscription prices.
//
// Prices stay full-precision decimals through every computation; the only
// place two-decimal rounding is allowed is the display formatting below.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// ParsePrice converts a raw price string into a decimal. Invalid and
// negative values degrade to zero instead of erroring, so one bad record
// cannot blank a whole view.
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MonthlyPrice returns the subscription's monthly-equivalent price:
// yearly prices divided by twelve, monthly prices as-is.
func (s Subscription) MonthlyPrice() decimal.Decimal {
	if s.Cycle == Yearly {
		return s.Price.Div(twelve)
	}
	return s.Price
}

// YearlyPrice returns the yearly-equivalent price.
func (s Subscription) YearlyPrice() decimal.Decimal {
	if s.Cycle == Yearly {
		return s.Price
	}
	return s.Price.Mul(twelve)
}

// FormatUSD renders an amount as "$12.34". This is the presentation
// boundary where rounding to two places happens.
func FormatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
