package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a stored quote.
//
// Transitions:
//   - pending  -> approved | rejected | cancelled
//   - approved -> cancelled
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// CanTransitionTo reports whether a quote in status s may move to next.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	switch s {
	case QuoteStatusPending:
		return next == QuoteStatusApproved || next == QuoteStatusRejected || next == QuoteStatusCancelled
	case QuoteStatusApproved:
		return next == QuoteStatusCancelled
	default:
		return false
	}
}

// Format is the aspect ratio of a deliverable. It never affects price.
type Format string

const (
	FormatHorizontal Format = "horizontal"
	FormatVertical   Format = "vertical"
	FormatSquare     Format = "square"
)

func (f Format) Valid() bool {
	switch f {
	case FormatHorizontal, FormatVertical, FormatSquare:
		return true
	}
	return false
}

// RateConfig holds the production parameters of a shoot.
// TravelKm is the one-way distance.
type RateConfig struct {
	DayRate     float64 `json:"day_rate"`
	CrewSize    int     `json:"crew_size"`
	ShootDays   int     `json:"shoot_days"`
	HoursPerDay float64 `json:"hours_per_day"`
	TravelKm    float64 `json:"travel_km"`
}

// Deliverable is one priced video output. Its position in the list decides its rate tier.
type Deliverable struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Format Format  `json:"format"`
}

type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Discount is a percent (0-100) or a flat currency amount taken off the subtotal.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// QuoteInput is the full set of engine inputs a quote was priced from.
type QuoteInput struct {
	Rate         RateConfig    `json:"rate"`
	Deliverables []Deliverable `json:"deliverables"`
	AddOns       []string      `json:"addons"`
	Discount     Discount      `json:"discount"`
}

// DeliverableCost is the priced form of a Deliverable, kept in input order.
type DeliverableCost struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`
	MinuteCharge decimal.Decimal `json:"minute_charge"`
	Cost         decimal.Decimal `json:"cost"`
}

// QuoteBreakdown is the priced result of a quote computation.
//
// Stage totals are whole currency units. BaseRate, HourlyRate and DailyCost are
// display figures kept to cents.
type QuoteBreakdown struct {
	BaseRate             decimal.Decimal   `json:"base_rate"`
	HourlyRate           decimal.Decimal   `json:"hourly_rate"`
	AdditionalHours      decimal.Decimal   `json:"additional_hours"`
	DailyCost            decimal.Decimal   `json:"daily_cost"`
	CrewMultiplier       decimal.Decimal   `json:"crew_multiplier"`
	ShootTotal           decimal.Decimal   `json:"shoot_total"`
	RoundTripKm          decimal.Decimal   `json:"round_trip_km"`
	TravelTotal          decimal.Decimal   `json:"travel_total"`
	DeliverablesTotal    decimal.Decimal   `json:"deliverables_total"`
	DeliverableBreakdown []DeliverableCost `json:"deliverable_breakdown"`
	AddonsTotal          decimal.Decimal   `json:"addons_total"`
	AddonsItems          []string          `json:"addons_items"`
	RushMultiplier       decimal.Decimal   `json:"rush_multiplier"`
	Subtotal             decimal.Decimal   `json:"subtotal"`
	DiscountAmount       decimal.Decimal   `json:"discount_amount"`
	DiscountCapped       bool              `json:"discount_capped"`
	GrandTotal           decimal.Decimal   `json:"grand_total"`
	ExTax                decimal.Decimal   `json:"ex_tax"`
	TaxAmount            decimal.Decimal   `json:"tax_amount"`
}

// Quote is a priced quote persisted for a client.
//
// Storage model (DynamoDB):
//   - PK: id
type Quote struct {
	ID         string         `json:"id"`
	ClientName string         `json:"client_name"`
	Input      QuoteInput     `json:"input"`
	Breakdown  QuoteBreakdown `json:"breakdown"`
	Status     QuoteStatus    `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
