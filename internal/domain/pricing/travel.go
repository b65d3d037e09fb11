package pricing

import "github.com/shopspring/decimal"

// TravelBand is both the band width in km and the fee charged per band.
var TravelBand = decimal.NewFromInt(50)

type TravelCost struct {
	RoundTripKm decimal.Decimal
	Total       decimal.Decimal
}

// PriceTravel bills the round trip in whole 50 km bands, rounding up. Zero distance is
// free; any other distance costs at least one band.
func PriceTravel(travelKm float64) TravelCost {
	if travelKm <= 0 {
		return TravelCost{RoundTripKm: decimal.Zero, Total: decimal.Zero}
	}
	roundTrip := decimal.NewFromFloat(travelKm).Mul(decimal.NewFromInt(2))
	bands := roundTrip.Div(TravelBand).Ceil()
	return TravelCost{
		RoundTripKm: roundTrip,
		Total:       bands.Mul(TravelBand),
	}
}
