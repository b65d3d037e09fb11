package response

import (
	"time"

	"fightreel_quotes/internal/domain/entities"
)

type DeliverableCostResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rate         float64 `json:"rate"`
	MinuteCharge float64 `json:"minute_charge"`
	Cost         float64 `json:"cost"`
}

// BreakdownResponse is the priced breakdown as JSON numbers.
type BreakdownResponse struct {
	BaseRate             float64                   `json:"base_rate" example:"400"`
	HourlyRate           float64                   `json:"hourly_rate" example:"85.71"`
	AdditionalHours      float64                   `json:"additional_hours" example:"3"`
	DailyCost            float64                   `json:"daily_cost" example:"657.14"`
	CrewMultiplier       float64                   `json:"crew_multiplier" example:"1.8"`
	ShootTotal           float64                   `json:"shoot_total" example:"1183"`
	RoundTripKm          float64                   `json:"round_trip_km" example:"0"`
	TravelTotal          float64                   `json:"travel_total" example:"0"`
	DeliverablesTotal    float64                   `json:"deliverables_total" example:"700"`
	DeliverableBreakdown []DeliverableCostResponse `json:"deliverable_breakdown"`
	AddonsTotal          float64                   `json:"addons_total" example:"0"`
	AddonsItems          []string                  `json:"addons_items"`
	RushMultiplier       float64                   `json:"rush_multiplier" example:"1"`
	Subtotal             float64                   `json:"subtotal" example:"1883"`
	DiscountAmount       float64                   `json:"discount_amount" example:"0"`
	DiscountCapped       bool                      `json:"discount_capped"`
	GrandTotal           float64                   `json:"grand_total" example:"1883"`
	ExTax                float64                   `json:"ex_tax" example:"1712"`
	TaxAmount            float64                   `json:"tax_amount" example:"171"`
}

func FromBreakdown(b entities.QuoteBreakdown) BreakdownResponse {
	items := make([]DeliverableCostResponse, 0, len(b.DeliverableBreakdown))
	for _, d := range b.DeliverableBreakdown {
		items = append(items, DeliverableCostResponse{
			ID:           d.ID,
			Name:         d.Name,
			Rate:         d.Rate.InexactFloat64(),
			MinuteCharge: d.MinuteCharge.InexactFloat64(),
			Cost:         d.Cost.InexactFloat64(),
		})
	}
	addons := b.AddonsItems
	if addons == nil {
		addons = []string{}
	}
	return BreakdownResponse{
		BaseRate:             b.BaseRate.InexactFloat64(),
		HourlyRate:           b.HourlyRate.InexactFloat64(),
		AdditionalHours:      b.AdditionalHours.InexactFloat64(),
		DailyCost:            b.DailyCost.InexactFloat64(),
		CrewMultiplier:       b.CrewMultiplier.InexactFloat64(),
		ShootTotal:           b.ShootTotal.InexactFloat64(),
		RoundTripKm:          b.RoundTripKm.InexactFloat64(),
		TravelTotal:          b.TravelTotal.InexactFloat64(),
		DeliverablesTotal:    b.DeliverablesTotal.InexactFloat64(),
		DeliverableBreakdown: items,
		AddonsTotal:          b.AddonsTotal.InexactFloat64(),
		AddonsItems:          addons,
		RushMultiplier:       b.RushMultiplier.InexactFloat64(),
		Subtotal:             b.Subtotal.InexactFloat64(),
		DiscountAmount:       b.DiscountAmount.InexactFloat64(),
		DiscountCapped:       b.DiscountCapped,
		GrandTotal:           b.GrandTotal.InexactFloat64(),
		ExTax:                b.ExTax.InexactFloat64(),
		TaxAmount:            b.TaxAmount.InexactFloat64(),
	}
}

type QuoteResponse struct {
	ID         string              `json:"id"`
	QuoteID    string              `json:"quote_id"`
	ClientName string              `json:"client_name"`
	Status     string              `json:"status"`
	Input      entities.QuoteInput `json:"input"`
	Breakdown  BreakdownResponse   `json:"breakdown"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		QuoteID:    q.ID,
		ClientName: q.ClientName,
		Status:     string(q.Status),
		Input:      q.Input,
		Breakdown:  FromBreakdown(q.Breakdown),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

type AddOnResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Price      float64 `json:"price"`
	PerDay     bool    `json:"per_day"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

type CatalogResponse struct {
	AddOns     []AddOnResponse     `json:"addons"`
	VideoRates entities.VideoRates `json:"video_rates"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	out := CatalogResponse{AddOns: make([]AddOnResponse, 0, len(c.AddOns)), VideoRates: c.VideoRates}
	for _, a := range c.AddOns {
		out.AddOns = append(out.AddOns, AddOnResponse{
			ID:         a.ID,
			Name:       a.Name,
			Kind:       string(a.Kind),
			Price:      a.Price,
			PerDay:     a.PerDay,
			Multiplier: a.Multiplier,
		})
	}
	return out
}
