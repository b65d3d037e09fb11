// Package export renders priced quotes as copyable plain text.
package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fightreel_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const labelWidth = 34

// FormatSummary renders a quote for pasting into an email or chat. Amounts are grouped
// by thousands; whole amounts print without cents.
func FormatSummary(clientName string, input entities.QuoteInput, b entities.QuoteBreakdown) string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder

	// Pad by runes so accented client and deliverable names keep the value column.
	line := func(label, value string) {
		pad := max(labelWidth-utf8.RuneCountInString(label), 1)
		fmt.Fprintf(&sb, "%s%s%s\n", label, strings.Repeat(" ", pad), value)
	}
	money := func(d decimal.Decimal) string {
		if d.IsInteger() {
			return p.Sprintf("$%d", d.IntPart())
		}
		return p.Sprintf("$%.2f", d.InexactFloat64())
	}

	name := strings.TrimSpace(clientName)
	if name == "" {
		name = "client"
	}
	sb.WriteString(p.Sprintf("Production quote for %s\n\n", name))

	r := input.Rate
	sb.WriteString("Shoot\n")
	line(p.Sprintf("  Day rate (crew of %d)", r.CrewSize), p.Sprintf("%s x%s", money(decimal.NewFromFloat(r.DayRate)), b.CrewMultiplier.String()))
	line(p.Sprintf("  %d day(s) at %v h/day", r.ShootDays, r.HoursPerDay), money(b.ShootTotal))
	line(p.Sprintf("Travel (%s km round trip)", b.RoundTripKm.String()), money(b.TravelTotal))

	sb.WriteString("Deliverables\n")
	for i, d := range b.DeliverableBreakdown {
		label := "  " + d.Name
		if i < len(input.Deliverables) {
			in := input.Deliverables[i]
			label = p.Sprintf("  %s (%v min, %s)", in.Name, in.Length, in.Format)
		}
		line(label, money(d.Cost))
	}
	line("  Deliverables total", money(b.DeliverablesTotal))

	if len(b.AddonsItems) > 0 {
		sb.WriteString("Add-ons\n")
		sb.WriteString("  " + strings.Join(b.AddonsItems, ", ") + "\n")
		line("  Add-ons total", money(b.AddonsTotal))
	}
	if !b.RushMultiplier.Equal(decimal.NewFromInt(1)) && !b.RushMultiplier.IsZero() {
		line("Rush turnaround", "x"+b.RushMultiplier.String())
	}

	sb.WriteString("\n")
	line("Subtotal", money(b.Subtotal))
	if b.DiscountAmount.IsPositive() {
		label := "Discount"
		if input.Discount.Type == entities.DiscountPercent {
			label = p.Sprintf("Discount (%v%%)", input.Discount.Value)
		}
		line(label, "-"+money(b.DiscountAmount))
	}
	line("Total (incl. tax)", money(b.GrandTotal))
	line("  Ex tax", money(b.ExTax))
	line("  Tax", money(b.TaxAmount))
	return sb.String()
}
