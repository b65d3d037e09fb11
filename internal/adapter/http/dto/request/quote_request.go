package request

import (
	"strings"

	"fightreel_quotes/internal/domain/entities"

	"github.com/google/uuid"
)

type RateConfigRequest struct {
	DayRate     float64 `json:"day_rate" example:"1000"`
	CrewSize    int     `json:"crew_size" example:"2"`
	ShootDays   int     `json:"shoot_days" example:"1"`
	HoursPerDay float64 `json:"hours_per_day" example:"4"`
	TravelKm    float64 `json:"travel_km" example:"0"`
}

type DeliverableRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name" example:"Fight recap"`
	Length float64 `json:"length" example:"2"`
	Format string  `json:"format" example:"horizontal"`
}

type DiscountRequest struct {
	Type  string  `json:"type" example:"percent"`
	Value float64 `json:"value" example:"10"`
}

// QuoteInputRequest is the pricing payload shared by preview, create and recalculate.
//
// Range checks are left to the pricing engine so every bad field is reported at once.
type QuoteInputRequest struct {
	Rate         RateConfigRequest    `json:"rate"`
	Deliverables []DeliverableRequest `json:"deliverables"`
	AddOns       []string             `json:"addons"`
	Discount     *DiscountRequest     `json:"discount"`
}

// ToInput converts the payload into engine input. Deliverables without an id get a
// fresh one; a missing format means horizontal and a missing discount means none.
func (r QuoteInputRequest) ToInput() entities.QuoteInput {
	in := entities.QuoteInput{
		Rate: entities.RateConfig{
			DayRate:     r.Rate.DayRate,
			CrewSize:    r.Rate.CrewSize,
			ShootDays:   r.Rate.ShootDays,
			HoursPerDay: r.Rate.HoursPerDay,
			TravelKm:    r.Rate.TravelKm,
		},
		Deliverables: make([]entities.Deliverable, 0, len(r.Deliverables)),
		AddOns:       make([]string, 0, len(r.AddOns)),
		Discount:     entities.Discount{Type: entities.DiscountNone},
	}

	for _, d := range r.Deliverables {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			id = uuid.NewString()
		}
		format := entities.Format(strings.ToLower(strings.TrimSpace(d.Format)))
		if format == "" {
			format = entities.FormatHorizontal
		}
		in.Deliverables = append(in.Deliverables, entities.Deliverable{
			ID:     id,
			Name:   strings.TrimSpace(d.Name),
			Length: d.Length,
			Format: format,
		})
	}

	for _, id := range r.AddOns {
		if id = strings.TrimSpace(id); id != "" {
			in.AddOns = append(in.AddOns, id)
		}
	}

	if r.Discount != nil {
		t := entities.DiscountType(strings.ToLower(strings.TrimSpace(r.Discount.Type)))
		if t == "" {
			t = entities.DiscountNone
		}
		in.Discount = entities.Discount{Type: t, Value: r.Discount.Value}
	}
	return in
}

type CreateQuoteRequest struct {
	ClientName string `json:"client_name" binding:"required" example:"Iron Gym"`
	QuoteInputRequest
}
