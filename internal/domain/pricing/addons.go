package pricing

import (
	"fmt"

	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AddOnsCost struct {
	Total          decimal.Decimal
	Items          []string
	RushMultiplier decimal.Decimal
}

// AggregateAddOns sums the flat charges of the selected add-ons and extracts the rush
// multiplier, which defaults to 1. Zero-priced flat entries are listed but cost nothing.
// Repeated ids count once.
func AggregateAddOns(selection []string, catalog entities.Catalog, shootDays int) (AddOnsCost, error) {
	out := AddOnsCost{
		Total:          decimal.Zero,
		Items:          make([]string, 0, len(selection)),
		RushMultiplier: decimal.NewFromInt(1),
	}
	days := decimal.NewFromInt(int64(shootDays))
	seen := make(map[string]struct{}, len(selection))
	rushID := ""

	for i, id := range selection {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a, ok := catalog.Lookup(id)
		if !ok {
			return AddOnsCost{}, &ConfigurationError{
				Field:   fmt.Sprintf("addons[%d]", i),
				Message: fmt.Sprintf("add-on %q is not in the catalog", id),
			}
		}

		switch a.Kind {
		case entities.AddOnRush:
			if rushID != "" {
				return AddOnsCost{}, &ConfigurationError{
					Field:   fmt.Sprintf("addons[%d]", i),
					Message: fmt.Sprintf("rush add-on %q selected alongside %q", id, rushID),
				}
			}
			rushID = id
			out.RushMultiplier = decimal.NewFromFloat(a.Multiplier)
			out.Items = append(out.Items, a.Name)
		case entities.AddOnFlat:
			out.Items = append(out.Items, a.Name)
			if a.Price <= 0 {
				continue
			}
			price := decimal.NewFromFloat(a.Price)
			if a.PerDay {
				price = price.Mul(days)
			}
			out.Total = out.Total.Add(price)
		default:
			return AddOnsCost{}, &ConfigurationError{
				Field:   fmt.Sprintf("addons[%d]", i),
				Message: fmt.Sprintf("add-on %q has unknown kind %q", id, a.Kind),
			}
		}
	}
	return out, nil
}
