package pricing

import (
	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	baseShare      = decimal.RequireFromString("0.4")
	hourlyShare    = decimal.RequireFromString("0.6")
	referenceHours = decimal.NewFromInt(7)

	// crewMultipliers scale a day's cost for team size; extra crew costs less than linear.
	crewMultipliers = map[int]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.RequireFromString("1.8"),
		3: decimal.RequireFromString("2.4"),
		4: decimal.RequireFromString("2.9"),
	}
)

// ShootCost is the labor side of a quote.
type ShootCost struct {
	BaseRate        decimal.Decimal
	HourlyRate      decimal.Decimal
	AdditionalHours decimal.Decimal
	DailyCost       decimal.Decimal
	CrewMultiplier  decimal.Decimal
	CostPerDay      decimal.Decimal
	Total           decimal.Decimal
}

// CrewMultiplier returns the team-size factor for crews of 1 to 4.
func CrewMultiplier(crewSize int) (decimal.Decimal, error) {
	m, ok := crewMultipliers[crewSize]
	if !ok {
		return decimal.Zero, ValidationErrors{{Field: "rate.crew_size", Message: "must be between 1 and 4"}}
	}
	return m, nil
}

// PriceShoot splits the day rate 40/60 into a base covering the first hour and an
// hourly rate spread over a 7-hour reference day, then scales by crew and days.
func PriceShoot(rate entities.RateConfig) (ShootCost, error) {
	mult, err := CrewMultiplier(rate.CrewSize)
	if err != nil {
		return ShootCost{}, err
	}

	dayRate := decimal.NewFromFloat(rate.DayRate)
	base := dayRate.Mul(baseShare)
	hourly := dayRate.Mul(hourlyShare).Div(referenceHours)

	extra := decimal.NewFromFloat(rate.HoursPerDay).Sub(decimal.NewFromInt(1))
	if extra.IsNegative() {
		extra = decimal.Zero
	}

	daily := base.Add(extra.Mul(hourly))
	perDay := daily.Mul(mult)

	return ShootCost{
		BaseRate:        base,
		HourlyRate:      hourly,
		AdditionalHours: extra,
		DailyCost:       daily,
		CrewMultiplier:  mult,
		CostPerDay:      perDay,
		Total:           perDay.Mul(decimal.NewFromInt(int64(rate.ShootDays))),
	}, nil
}
