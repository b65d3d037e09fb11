package pricing

import "github.com/shopspring/decimal"

// TaxRate is the flat rate already included in every grand total.
var TaxRate = decimal.RequireFromString("0.1")

type TaxSplit struct {
	ExTax     decimal.Decimal
	TaxAmount decimal.Decimal
}

// ExtractTax back-calculates the tax-exclusive amount from a tax-inclusive total.
// ExTax is rounded to whole units and TaxAmount is the remainder, so the two always
// add back up to grandTotal.
func ExtractTax(grandTotal decimal.Decimal) TaxSplit {
	exTax := grandTotal.Div(decimal.NewFromInt(1).Add(TaxRate)).Round(0)
	return TaxSplit{
		ExTax:     exTax,
		TaxAmount: grandTotal.Sub(exTax),
	}
}
