package pricing

import (
	"fmt"
	"math"
	"strings"

	"fightreel_quotes/internal/domain/entities"
)

const (
	minCrewSize = 1
	maxCrewSize = 4
)

type fieldCollector struct {
	errs ValidationErrors
}

func (c *fieldCollector) add(field, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// finite reports whether v can be priced; it records a field error when it cannot.
func (c *fieldCollector) finite(field string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.add(field, "must be a finite number")
		return false
	}
	return true
}

// ValidateInput checks every caller-supplied field and returns all problems at once.
// A nil result means the input can be priced.
func ValidateInput(rate entities.RateConfig, deliverables []entities.Deliverable, discount entities.Discount) ValidationErrors {
	var c fieldCollector

	if c.finite("rate.day_rate", rate.DayRate) && rate.DayRate <= 0 {
		c.add("rate.day_rate", "must be greater than 0")
	}
	if rate.CrewSize < minCrewSize || rate.CrewSize > maxCrewSize {
		c.add("rate.crew_size", "must be between %d and %d", minCrewSize, maxCrewSize)
	}
	if rate.ShootDays < 1 {
		c.add("rate.shoot_days", "must be at least 1")
	}
	if c.finite("rate.hours_per_day", rate.HoursPerDay) && rate.HoursPerDay < 0 {
		c.add("rate.hours_per_day", "must not be negative")
	}
	if c.finite("rate.travel_km", rate.TravelKm) && rate.TravelKm < 0 {
		c.add("rate.travel_km", "must not be negative")
	}

	seen := make(map[string]int, len(deliverables))
	for i, d := range deliverables {
		prefix := fmt.Sprintf("deliverables[%d]", i)
		id := strings.TrimSpace(d.ID)
		switch {
		case id == "":
			c.add(prefix+".id", "is required")
		default:
			if first, dup := seen[id]; dup {
				c.add(prefix+".id", "duplicates deliverables[%d]", first)
			} else {
				seen[id] = i
			}
		}
		if c.finite(prefix+".length", d.Length) && d.Length <= 0 {
			c.add(prefix+".length", "must be greater than 0")
		}
		if !d.Format.Valid() {
			c.add(prefix+".format", "must be horizontal, vertical or square")
		}
	}

	switch discount.Type {
	case entities.DiscountNone, entities.DiscountPercent, entities.DiscountFixed:
	default:
		c.add("discount.type", "must be none, percent or fixed")
	}
	if c.finite("discount.value", discount.Value) {
		if discount.Value < 0 {
			c.add("discount.value", "must not be negative")
		} else if discount.Type == entities.DiscountPercent && discount.Value > 100 {
			c.add("discount.value", "must not exceed 100 for a percent discount")
		}
	}

	return c.errs
}

// ValidateCatalog checks the rate card and add-on set. At most one rush entry may exist.
func ValidateCatalog(catalog entities.Catalog) error {
	rates := []struct {
		field string
		v     float64
	}{
		{"video_rates.base", catalog.VideoRates.Base},
		{"video_rates.additional", catalog.VideoRates.Additional},
		{"video_rates.per_minute", catalog.VideoRates.PerMinute},
	}
	for _, r := range rates {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) || r.v < 0 {
			return &ConfigurationError{Field: r.field, Message: "must be a finite, non-negative amount"}
		}
	}

	ids := make(map[string]struct{}, len(catalog.AddOns))
	rushID := ""
	for i, a := range catalog.AddOns {
		field := fmt.Sprintf("addons[%d]", i)
		if strings.TrimSpace(a.ID) == "" {
			return &ConfigurationError{Field: field + ".id", Message: "is required"}
		}
		if _, dup := ids[a.ID]; dup {
			return &ConfigurationError{Field: field + ".id", Message: fmt.Sprintf("duplicate add-on id %q", a.ID)}
		}
		ids[a.ID] = struct{}{}

		switch a.Kind {
		case entities.AddOnRush:
			if rushID != "" {
				return &ConfigurationError{Field: field, Message: fmt.Sprintf("second rush entry %q, %q is already rush", a.ID, rushID)}
			}
			rushID = a.ID
			if math.IsNaN(a.Multiplier) || math.IsInf(a.Multiplier, 0) || a.Multiplier <= 0 {
				return &ConfigurationError{Field: field + ".multiplier", Message: "must be a finite amount greater than 0"}
			}
		case entities.AddOnFlat:
			if math.IsNaN(a.Price) || math.IsInf(a.Price, 0) || a.Price < 0 {
				return &ConfigurationError{Field: field + ".price", Message: "must be a finite, non-negative amount"}
			}
		default:
			return &ConfigurationError{Field: field + ".kind", Message: fmt.Sprintf("unknown add-on kind %q", a.Kind)}
		}
	}
	return nil
}
