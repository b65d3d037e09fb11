package repository

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/usecase/interfaces"
)

// ErrDuplicateID is returned by the in-memory repositories when a record with the same id exists.
var ErrDuplicateID = errors.New("record already exists")

// MemoryQuoteRepository is an in-memory quote store used when STORAGE=memory.
type MemoryQuoteRepository struct {
	mu     sync.Mutex
	quotes map[string]entities.Quote
	now    func() time.Time
}

var _ interfaces.IQuoteRepository = (*MemoryQuoteRepository)(nil)

func NewMemoryQuoteRepository() *MemoryQuoteRepository {
	return &MemoryQuoteRepository{
		quotes: map[string]entities.Quote{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryQuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quotes[q.ID]; ok {
		return entities.Quote{}, ErrDuplicateID
	}
	m.quotes[q.ID] = cloneQuote(q)
	return q, nil
}

func (m *MemoryQuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok {
		return entities.Quote{}, nil
	}
	return cloneQuote(q), nil
}

func (m *MemoryQuoteRepository) UpdateStatus(_ context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok || q.Status != from {
		return entities.Quote{}, nil
	}
	q.Status = to
	q.UpdatedAt = m.now()
	m.quotes[id] = q
	return cloneQuote(q), nil
}

func (m *MemoryQuoteRepository) UpdatePricing(_ context.Context, id string, input entities.QuoteInput, breakdown entities.QuoteBreakdown) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok || q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, nil
	}
	q.Input = input
	q.Breakdown = breakdown
	q.UpdatedAt = m.now()
	q = cloneQuote(q)
	m.quotes[id] = q
	return cloneQuote(q), nil
}

// cloneQuote copies the slices so callers never share backing arrays with the store.
func cloneQuote(q entities.Quote) entities.Quote {
	q.Input.Deliverables = slices.Clone(q.Input.Deliverables)
	q.Input.AddOns = slices.Clone(q.Input.AddOns)
	q.Breakdown.DeliverableBreakdown = slices.Clone(q.Breakdown.DeliverableBreakdown)
	q.Breakdown.AddonsItems = slices.Clone(q.Breakdown.AddonsItems)
	return q
}

// MemoryQuotePaymentRepository is an in-memory payment store used when STORAGE=memory.
type MemoryQuotePaymentRepository struct {
	mu      sync.Mutex
	byID    map[string]entities.QuotePayment
	byQuote map[string][]string
}

var _ interfaces.IQuotePaymentRepository = (*MemoryQuotePaymentRepository)(nil)

func NewMemoryQuotePaymentRepository() *MemoryQuotePaymentRepository {
	return &MemoryQuotePaymentRepository{
		byID:    map[string]entities.QuotePayment{},
		byQuote: map[string][]string{},
	}
}

func (m *MemoryQuotePaymentRepository) Create(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; ok {
		return entities.QuotePayment{}, ErrDuplicateID
	}
	m.byID[p.ID] = p
	m.byQuote[p.QuoteID] = append(m.byQuote[p.QuoteID], p.ID)
	return p, nil
}

func (m *MemoryQuotePaymentRepository) GetByID(_ context.Context, id string) (entities.QuotePayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *MemoryQuotePaymentRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.QuotePayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.QuotePayment, 0, len(m.byQuote[quoteID]))
	for _, id := range m.byQuote[quoteID] {
		out = append(out, m.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
