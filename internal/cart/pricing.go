package cart

import (
	"github.com/shopspring/decimal"

	"CartDesk/internal/directory"
)

var DefaultGSTRate = decimal.RequireFromString("0.10")

type Totals struct {
	Qty  int
	Cost decimal.Decimal
}

// Price subtracts the discount from every item, not once per cart, and does
// not floor the result at zero. Tax is applied last, on the discounted sum.
func Price(items []directory.Product, discount decimal.Decimal, gst bool, rate decimal.Decimal) Totals {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Cost.Sub(discount))
	}

	if gst {
		total = total.Mul(decimal.NewFromInt(1).Add(rate))
	}

	return Totals{Qty: len(items), Cost: total}
}
