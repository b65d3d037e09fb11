package pricing

import (
	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type DiscountResult struct {
	Amount decimal.Decimal
	// Capped is set when a fixed discount exceeded the subtotal and was cut down to it.
	Capped bool
}

// ApplyDiscount works out the amount taken off subtotal. The amount never exceeds the
// subtotal, so the grand total cannot go negative.
func ApplyDiscount(subtotal decimal.Decimal, d entities.Discount) DiscountResult {
	var amount decimal.Decimal
	switch d.Type {
	case entities.DiscountPercent:
		amount = subtotal.Mul(decimal.NewFromFloat(d.Value)).Div(hundred)
	case entities.DiscountFixed:
		amount = decimal.NewFromFloat(d.Value)
	default:
		return DiscountResult{Amount: decimal.Zero}
	}

	if amount.GreaterThan(subtotal) {
		return DiscountResult{Amount: subtotal, Capped: true}
	}
	return DiscountResult{Amount: amount}
}
