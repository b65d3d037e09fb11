// Package pricing turns production parameters into a priced, tax-decomposed quote.
//
// Every function here is pure: no I/O, no shared state. ComputeQuote is the entry
// point; the stage functions are exported for callers that need a single figure.
package pricing

import (
	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ComputeQuote prices a quote in a fixed order:
//
//	subtotal = (shoot + travel + deliverables + flat add-ons) * rush
//	grand    = subtotal - discount
//	exTax    = grand / 1.1, tax = grand - exTax
//
// A malformed catalog or unresolvable selection yields a *ConfigurationError. Invalid
// caller input yields ValidationErrors listing every bad field. In both cases nothing
// is computed.
func ComputeQuote(
	rate entities.RateConfig,
	deliverables []entities.Deliverable,
	selection []string,
	discount entities.Discount,
	catalog entities.Catalog,
) (entities.QuoteBreakdown, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return entities.QuoteBreakdown{}, err
	}
	if errs := ValidateInput(rate, deliverables, discount); len(errs) > 0 {
		return entities.QuoteBreakdown{}, errs
	}

	addons, err := AggregateAddOns(selection, catalog, rate.ShootDays)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}
	shoot, err := PriceShoot(rate)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}
	travel := PriceTravel(rate.TravelKm)
	videos := PriceDeliverables(deliverables, catalog.VideoRates)

	subtotal := shoot.Total.
		Add(travel.Total).
		Add(videos.Total).
		Add(addons.Total).
		Mul(addons.RushMultiplier)

	disc := ApplyDiscount(subtotal, discount)
	// Subtotal - DiscountAmount == GrandTotal on the rounded figures.
	grand := whole(subtotal).Sub(whole(disc.Amount))
	tax := ExtractTax(grand)

	items := make([]entities.DeliverableCost, len(videos.Items))
	for i, it := range videos.Items {
		items[i] = entities.DeliverableCost{
			ID:           it.ID,
			Name:         it.Name,
			Rate:         cents(it.Rate),
			MinuteCharge: cents(it.MinuteCharge),
			Cost:         cents(it.Cost),
		}
	}

	return entities.QuoteBreakdown{
		BaseRate:             cents(shoot.BaseRate),
		HourlyRate:           cents(shoot.HourlyRate),
		AdditionalHours:      shoot.AdditionalHours,
		DailyCost:            cents(shoot.DailyCost),
		CrewMultiplier:       shoot.CrewMultiplier,
		ShootTotal:           whole(shoot.Total),
		RoundTripKm:          travel.RoundTripKm,
		TravelTotal:          whole(travel.Total),
		DeliverablesTotal:    whole(videos.Total),
		DeliverableBreakdown: items,
		AddonsTotal:          whole(addons.Total),
		AddonsItems:          addons.Items,
		RushMultiplier:       addons.RushMultiplier,
		Subtotal:             whole(subtotal),
		DiscountAmount:       whole(disc.Amount),
		DiscountCapped:       disc.Capped,
		GrandTotal:           grand,
		ExTax:                tax.ExTax,
		TaxAmount:            tax.TaxAmount,
	}, nil
}

// ComputeQuoteInput is ComputeQuote over a bundled QuoteInput.
func ComputeQuoteInput(in entities.QuoteInput, catalog entities.Catalog) (entities.QuoteBreakdown, error) {
	return ComputeQuote(in.Rate, in.Deliverables, in.AddOns, in.Discount, catalog)
}

func whole(d decimal.Decimal) decimal.Decimal { return d.Round(0) }

func cents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
