package pricing_test

import (
	"encoding/json"
	"errors"
	"testing"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "want %s, got %s %v", w, got, msgAndArgs)
}

func testCatalog() entities.Catalog {
	return entities.Catalog{
		VideoRates: entities.VideoRates{Base: 500, Additional: 300, PerMinute: 200},
		AddOns: []entities.AddOn{
			entities.NewFlatAddOn("drone", "Drone footage", 100, true),
			entities.NewFlatAddOn("photography", "Stills photography", 400, false),
			entities.NewFlatAddOn("music", "Client-supplied music", 0, false),
			entities.NewRushAddOn("rush", "Rush delivery", 1.5),
		},
	}
}

func TestCrewMultiplier(t *testing.T) {
	want := map[int]string{1: "1", 2: "1.8", 3: "2.4", 4: "2.9"}
	for size, w := range want {
		got, err := pricing.CrewMultiplier(size)
		require.NoError(t, err)
		assertDec(t, w, got, size)
	}

	for _, size := range []int{-1, 0, 5, 10} {
		_, err := pricing.CrewMultiplier(size)
		assert.ErrorIs(t, err, pricing.ErrValidation, "crew size %d", size)
	}
}

func TestPriceShoot(t *testing.T) {
	t.Run("hours beyond the first are billed hourly", func(t *testing.T) {
		got, err := pricing.PriceShoot(entities.RateConfig{DayRate: 1000, CrewSize: 2, ShootDays: 1, HoursPerDay: 4})
		require.NoError(t, err)
		assertDec(t, "400", got.BaseRate)
		assertDec(t, "85.71", got.HourlyRate.Round(2))
		assertDec(t, "3", got.AdditionalHours)
		assertDec(t, "657.14", got.DailyCost.Round(2))
		assertDec(t, "1182.86", got.Total.Round(2))
	})

	t.Run("first hour is covered by the base", func(t *testing.T) {
		got, err := pricing.PriceShoot(entities.RateConfig{DayRate: 700, CrewSize: 1, ShootDays: 3, HoursPerDay: 1})
		require.NoError(t, err)
		assertDec(t, "0", got.AdditionalHours)
		assertDec(t, "280", got.DailyCost)
		assertDec(t, "840", got.Total)
	})

	t.Run("zero hours never go negative", func(t *testing.T) {
		got, err := pricing.PriceShoot(entities.RateConfig{DayRate: 700, CrewSize: 1, ShootDays: 1, HoursPerDay: 0})
		require.NoError(t, err)
		assertDec(t, "0", got.AdditionalHours)
		assertDec(t, "280", got.Total)
	})
}

func TestPriceTravel(t *testing.T) {
	cases := []struct {
		km        float64
		roundTrip string
		total     string
	}{
		{0, "0", "0"},
		{0.5, "1", "50"},
		{1, "2", "50"},
		{24, "48", "50"},
		{25, "50", "50"},
		{26, "52", "100"},
		{50, "100", "100"},
		{120, "240", "250"},
	}
	for _, tc := range cases {
		got := pricing.PriceTravel(tc.km)
		assertDec(t, tc.roundTrip, got.RoundTripKm, tc.km)
		assertDec(t, tc.total, got.Total, tc.km)
	}
}

func TestPriceDeliverables(t *testing.T) {
	rates := testCatalog().VideoRates

	t.Run("single one-minute item costs the base rate", func(t *testing.T) {
		got := pricing.PriceDeliverables([]entities.Deliverable{{ID: "a", Length: 1}}, rates)
		require.Len(t, got.Items, 1)
		assertDec(t, "0", got.Items[0].MinuteCharge)
		assertDec(t, "500", got.Total)
	})

	t.Run("extra minutes are surcharged", func(t *testing.T) {
		got := pricing.PriceDeliverables([]entities.Deliverable{{ID: "a", Length: 3}}, rates)
		assertDec(t, "900", got.Items[0].Cost)
	})

	t.Run("later items use the additional rate even when longer", func(t *testing.T) {
		got := pricing.PriceDeliverables([]entities.Deliverable{
			{ID: "short", Length: 1},
			{ID: "long", Length: 5},
		}, rates)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "short", got.Items[0].ID)
		assert.Equal(t, "long", got.Items[1].ID)
		assertDec(t, "500", got.Items[0].Rate)
		assertDec(t, "300", got.Items[1].Rate)
		assertDec(t, "1100", got.Items[1].Cost)
		assertDec(t, "1600", got.Total)
	})

	t.Run("empty list", func(t *testing.T) {
		got := pricing.PriceDeliverables(nil, rates)
		assert.Empty(t, got.Items)
		assertDec(t, "0", got.Total)
	})
}

func TestAggregateAddOns(t *testing.T) {
	catalog := testCatalog()

	t.Run("no selection", func(t *testing.T) {
		got, err := pricing.AggregateAddOns(nil, catalog, 2)
		require.NoError(t, err)
		assertDec(t, "0", got.Total)
		assertDec(t, "1", got.RushMultiplier)
		assert.Empty(t, got.Items)
	})

	t.Run("per-day and flat charges", func(t *testing.T) {
		got, err := pricing.AggregateAddOns([]string{"drone", "photography"}, catalog, 3)
		require.NoError(t, err)
		assertDec(t, "700", got.Total)
		assert.Equal(t, []string{"Drone footage", "Stills photography"}, got.Items)
	})

	t.Run("rush is recorded but adds nothing", func(t *testing.T) {
		got, err := pricing.AggregateAddOns([]string{"rush"}, catalog, 1)
		require.NoError(t, err)
		assertDec(t, "0", got.Total)
		assertDec(t, "1.5", got.RushMultiplier)
		assert.Equal(t, []string{"Rush delivery"}, got.Items)
	})

	t.Run("informational add-on is listed without a price", func(t *testing.T) {
		got, err := pricing.AggregateAddOns([]string{"music"}, catalog, 1)
		require.NoError(t, err)
		assertDec(t, "0", got.Total)
		assert.Equal(t, []string{"Client-supplied music"}, got.Items)
	})

	t.Run("repeated ids count once", func(t *testing.T) {
		got, err := pricing.AggregateAddOns([]string{"photography", "photography"}, catalog, 1)
		require.NoError(t, err)
		assertDec(t, "400", got.Total)
		assert.Len(t, got.Items, 1)
	})

	t.Run("unknown id is a configuration error", func(t *testing.T) {
		_, err := pricing.AggregateAddOns([]string{"drone", "hologram"}, catalog, 1)
		require.ErrorIs(t, err, pricing.ErrConfiguration)
		var cfgErr *pricing.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "addons[1]", cfgErr.Field)
	})
}

func TestApplyDiscount(t *testing.T) {
	subtotal := decimal.NewFromInt(1740)

	got := pricing.ApplyDiscount(subtotal, entities.Discount{Type: entities.DiscountNone, Value: 50})
	assertDec(t, "0", got.Amount)

	got = pricing.ApplyDiscount(subtotal, entities.Discount{Type: entities.DiscountPercent, Value: 10})
	assertDec(t, "174", got.Amount)
	assert.False(t, got.Capped)

	got = pricing.ApplyDiscount(subtotal, entities.Discount{Type: entities.DiscountFixed, Value: 250})
	assertDec(t, "250", got.Amount)

	got = pricing.ApplyDiscount(subtotal, entities.Discount{Type: entities.DiscountFixed, Value: 5000})
	assertDec(t, "1740", got.Amount)
	assert.True(t, got.Capped)
}

func TestExtractTax(t *testing.T) {
	got := pricing.ExtractTax(decimal.NewFromInt(1883))
	assertDec(t, "1712", got.ExTax)
	assertDec(t, "171", got.TaxAmount)

	for g := int64(0); g <= 20000; g += 37 {
		grand := decimal.NewFromInt(g)
		split := pricing.ExtractTax(grand)
		assert.True(t, split.ExTax.Add(split.TaxAmount).Equal(grand), "parts must sum to %d", g)
		diff := split.ExTax.Mul(decimal.RequireFromString("1.1")).Sub(grand).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(1)), "exTax*1.1 drifted %s from %d", diff, g)
	}
}

func TestComputeQuote_EndToEnd(t *testing.T) {
	got, err := pricing.ComputeQuote(
		entities.RateConfig{DayRate: 1000, CrewSize: 2, ShootDays: 1, HoursPerDay: 4, TravelKm: 0},
		[]entities.Deliverable{{ID: "d1", Name: "Fight recap", Length: 2, Format: entities.FormatHorizontal}},
		nil,
		entities.Discount{Type: entities.DiscountNone},
		testCatalog(),
	)
	require.NoError(t, err)

	assertDec(t, "400", got.BaseRate)
	assertDec(t, "85.71", got.HourlyRate)
	assertDec(t, "3", got.AdditionalHours)
	assertDec(t, "657.14", got.DailyCost)
	assertDec(t, "1.8", got.CrewMultiplier)
	assertDec(t, "1183", got.ShootTotal)
	assertDec(t, "0", got.RoundTripKm)
	assertDec(t, "0", got.TravelTotal)
	assertDec(t, "700", got.DeliverablesTotal)
	require.Len(t, got.DeliverableBreakdown, 1)
	assertDec(t, "700", got.DeliverableBreakdown[0].Cost)
	assertDec(t, "0", got.AddonsTotal)
	assertDec(t, "1", got.RushMultiplier)
	assertDec(t, "1883", got.Subtotal)
	assertDec(t, "0", got.DiscountAmount)
	assertDec(t, "1883", got.GrandTotal)
	assertDec(t, "1712", got.ExTax)
	assertDec(t, "171", got.TaxAmount)
}

func TestComputeQuote_Rush(t *testing.T) {
	rate := entities.RateConfig{DayRate: 700, CrewSize: 1, ShootDays: 2, HoursPerDay: 1}

	t.Run("rush scales flat add-ons too", func(t *testing.T) {
		got, err := pricing.ComputeQuote(rate, nil, []string{"photography", "drone", "rush"}, entities.Discount{Type: entities.DiscountNone}, testCatalog())
		require.NoError(t, err)
		assertDec(t, "560", got.ShootTotal)
		assertDec(t, "600", got.AddonsTotal)
		assertDec(t, "1740", got.Subtotal)
		assertDec(t, "1740", got.GrandTotal)
		assertDec(t, "1582", got.ExTax)
		assertDec(t, "158", got.TaxAmount)
		assert.Equal(t, []string{"Stills photography", "Drone footage", "Rush delivery"}, got.AddonsItems)
	})

	t.Run("discount is taken after rush", func(t *testing.T) {
		got, err := pricing.ComputeQuote(rate, nil, []string{"photography", "drone", "rush"}, entities.Discount{Type: entities.DiscountPercent, Value: 10}, testCatalog())
		require.NoError(t, err)
		assertDec(t, "174", got.DiscountAmount)
		assertDec(t, "1566", got.GrandTotal)
		assertDec(t, "1424", got.ExTax)
		assertDec(t, "142", got.TaxAmount)
	})
}

func TestComputeQuote_Discounts(t *testing.T) {
	rate := entities.RateConfig{DayRate: 1000, CrewSize: 3, ShootDays: 2, HoursPerDay: 6, TravelKm: 40}
	dels := []entities.Deliverable{
		{ID: "a", Length: 4, Format: entities.FormatVertical},
		{ID: "b", Length: 1, Format: entities.FormatSquare},
	}

	t.Run("full percent discount zeroes the total", func(t *testing.T) {
		got, err := pricing.ComputeQuote(rate, dels, []string{"rush"}, entities.Discount{Type: entities.DiscountPercent, Value: 100}, testCatalog())
		require.NoError(t, err)
		assertDec(t, "0", got.GrandTotal)
		assertDec(t, "0", got.ExTax)
		assertDec(t, "0", got.TaxAmount)
		assert.False(t, got.DiscountCapped)
	})

	t.Run("oversized fixed discount is capped at the subtotal", func(t *testing.T) {
		got, err := pricing.ComputeQuote(rate, dels, nil, entities.Discount{Type: entities.DiscountFixed, Value: 1e7}, testCatalog())
		require.NoError(t, err)
		assert.True(t, got.DiscountCapped)
		assertDec(t, "0", got.GrandTotal)
		assert.False(t, got.TaxAmount.IsNegative())
		assert.True(t, got.DiscountAmount.Equal(got.Subtotal))
	})
}

func TestComputeQuote_DisplayedFiguresAddUp(t *testing.T) {
	catalog := entities.Catalog{VideoRates: entities.VideoRates{Base: 0.5, Additional: 0.5, PerMinute: 1}}
	rate := entities.RateConfig{DayRate: 250, CrewSize: 1, ShootDays: 1, HoursPerDay: 1}
	dels := []entities.Deliverable{{ID: "a", Length: 1, Format: entities.FormatHorizontal}}

	got, err := pricing.ComputeQuote(rate, dels, nil, entities.Discount{Type: entities.DiscountPercent, Value: 50}, catalog)
	require.NoError(t, err)
	assertDec(t, "101", got.Subtotal)
	assertDec(t, "50", got.DiscountAmount)
	assertDec(t, "51", got.GrandTotal)
	assert.True(t, got.Subtotal.Sub(got.DiscountAmount).Equal(got.GrandTotal))
}

func TestComputeQuote_Idempotent(t *testing.T) {
	rate := entities.RateConfig{DayRate: 1234.56, CrewSize: 4, ShootDays: 3, HoursPerDay: 9.5, TravelKm: 77.7}
	dels := []entities.Deliverable{
		{ID: "a", Name: "Walkout", Length: 1.5, Format: entities.FormatVertical},
		{ID: "b", Name: "Highlights", Length: 6, Format: entities.FormatHorizontal},
	}
	sel := []string{"drone", "rush", "music"}
	disc := entities.Discount{Type: entities.DiscountFixed, Value: 321.5}

	first, err := pricing.ComputeQuote(rate, dels, sel, disc, testCatalog())
	require.NoError(t, err)
	second, err := pricing.ComputeQuote(rate, dels, sel, disc, testCatalog())
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestComputeQuote_ValidationReportsEveryField(t *testing.T) {
	_, err := pricing.ComputeQuote(
		entities.RateConfig{DayRate: -1, CrewSize: 5, ShootDays: 0, HoursPerDay: -2, TravelKm: -3},
		[]entities.Deliverable{
			{ID: "a", Length: 0, Format: entities.FormatHorizontal},
			{ID: "a", Length: 2, Format: "portrait"},
		},
		nil,
		entities.Discount{Type: entities.DiscountPercent, Value: 120},
		testCatalog(),
	)
	require.ErrorIs(t, err, pricing.ErrValidation)

	var verrs pricing.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{
		"rate.day_rate",
		"rate.crew_size",
		"rate.shoot_days",
		"rate.hours_per_day",
		"rate.travel_km",
		"deliverables[0].length",
		"deliverables[1].id",
		"deliverables[1].format",
		"discount.value",
	}, fields)
}

func TestComputeQuote_ConfigurationErrors(t *testing.T) {
	rate := entities.RateConfig{DayRate: 500, CrewSize: 1, ShootDays: 1, HoursPerDay: 1}
	none := entities.Discount{Type: entities.DiscountNone}

	t.Run("two rush entries", func(t *testing.T) {
		catalog := testCatalog()
		catalog.AddOns = append(catalog.AddOns, entities.NewRushAddOn("super-rush", "Same-day", 2))
		_, err := pricing.ComputeQuote(rate, nil, nil, none, catalog)
		assert.ErrorIs(t, err, pricing.ErrConfiguration)
	})

	t.Run("configuration errors win over bad input", func(t *testing.T) {
		catalog := testCatalog()
		catalog.VideoRates.Base = -1
		_, err := pricing.ComputeQuote(entities.RateConfig{CrewSize: 9}, nil, nil, none, catalog)
		assert.ErrorIs(t, err, pricing.ErrConfiguration)
		assert.NotErrorIs(t, err, pricing.ErrValidation)
	})

	t.Run("selected id missing from catalog", func(t *testing.T) {
		_, err := pricing.ComputeQuote(rate, nil, []string{"nope"}, none, testCatalog())
		assert.ErrorIs(t, err, pricing.ErrConfiguration)
	})
}

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, pricing.ValidateCatalog(testCatalog()))

	bad := []entities.Catalog{
		{AddOns: []entities.AddOn{{ID: "", Kind: entities.AddOnFlat}}},
		{AddOns: []entities.AddOn{entities.NewFlatAddOn("x", "X", 1, false), entities.NewFlatAddOn("x", "X2", 1, false)}},
		{AddOns: []entities.AddOn{entities.NewRushAddOn("r", "R", 0)}},
		{AddOns: []entities.AddOn{entities.NewFlatAddOn("x", "X", -5, false)}},
		{AddOns: []entities.AddOn{{ID: "x", Kind: "bundle"}}},
		{VideoRates: entities.VideoRates{PerMinute: -1}},
	}
	for i, c := range bad {
		assert.ErrorIs(t, pricing.ValidateCatalog(c), pricing.ErrConfiguration, "case %d", i)
	}
}
