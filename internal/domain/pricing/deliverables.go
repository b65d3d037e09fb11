package pricing

import (
	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DeliverablesCost struct {
	Items []entities.DeliverableCost
	Total decimal.Decimal
}

// PriceDeliverables prices items by position: index 0 at the base video rate, the rest
// at the additional rate. The first minute of each item is included in its rate.
func PriceDeliverables(items []entities.Deliverable, rates entities.VideoRates) DeliverablesCost {
	base := decimal.NewFromFloat(rates.Base)
	additional := decimal.NewFromFloat(rates.Additional)
	perMinute := decimal.NewFromFloat(rates.PerMinute)
	one := decimal.NewFromInt(1)

	out := DeliverablesCost{
		Items: make([]entities.DeliverableCost, 0, len(items)),
		Total: decimal.Zero,
	}
	for i, d := range items {
		rate := additional
		if i == 0 {
			rate = base
		}
		extraMinutes := decimal.NewFromFloat(d.Length).Sub(one)
		if extraMinutes.IsNegative() {
			extraMinutes = decimal.Zero
		}
		minuteCharge := extraMinutes.Mul(perMinute)
		cost := rate.Add(minuteCharge)

		out.Items = append(out.Items, entities.DeliverableCost{
			ID:           d.ID,
			Name:         d.Name,
			Rate:         rate,
			MinuteCharge: minuteCharge,
			Cost:         cost,
		})
		out.Total = out.Total.Add(cost)
	}
	return out
}
