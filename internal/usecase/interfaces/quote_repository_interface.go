package interfaces

import (
	"context"
	"fightreel_quotes/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// Lookups and conditional updates return a zero Quote (empty ID) when the record is
// missing or the condition did not hold:
//   - UpdateStatus only applies while the stored status equals from
//   - UpdatePricing only applies while the quote is pending

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	UpdatePricing(ctx context.Context, id string, input entities.QuoteInput, breakdown entities.QuoteBreakdown) (entities.Quote, error)
}
