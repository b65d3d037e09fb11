package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/domain/pricing"
	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/metrics"
	"fightreel_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidClientName       = errors.New("invalid client name")
	ErrInvalidStatusTransition = errors.New("invalid quote status transition")
	ErrQuoteNotPending         = errors.New("quote is no longer pending")
)

// IQuoteUseCase exposes quote pricing and lifecycle operations.
//
//   - Calculate prices an input without storing anything (live preview)
//   - CreateQuote prices and stores a pending quote for a client
//   - Recalculate reprices a pending quote from new inputs
//   - Approve/Reject/Cancel move a quote through its lifecycle

type IQuoteUseCase interface {
	Catalog() entities.Catalog
	Calculate(ctx context.Context, input entities.QuoteInput) (entities.QuoteBreakdown, error)
	CreateQuote(ctx context.Context, clientName string, input entities.QuoteInput) (entities.Quote, error)
	Recalculate(ctx context.Context, id string, input entities.QuoteInput) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog entities.Catalog
	logger  *zap.Logger
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog entities.Catalog) *QuoteUseCase {
	return &QuoteUseCase{
		repo:    repo,
		catalog: catalog,
		logger:  logger.Log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Catalog() entities.Catalog {
	return u.catalog
}

func (u *QuoteUseCase) Calculate(_ context.Context, input entities.QuoteInput) (entities.QuoteBreakdown, error) {
	return u.compute(input)
}

func (u *QuoteUseCase) compute(input entities.QuoteInput) (entities.QuoteBreakdown, error) {
	b, err := pricing.ComputeQuoteInput(input, u.catalog)
	switch {
	case err == nil:
		metrics.QuoteComputations.WithLabelValues("ok").Inc()
		metrics.QuoteGrandTotal.Observe(b.GrandTotal.InexactFloat64())
	case errors.Is(err, pricing.ErrConfiguration):
		metrics.QuoteComputations.WithLabelValues("misconfigured").Inc()
		u.logger.Error("quote catalog misconfigured", zap.Error(err))
	default:
		metrics.QuoteComputations.WithLabelValues("invalid").Inc()
		u.logger.Debug("quote input rejected", zap.Error(err))
	}
	return b, err
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, clientName string, input entities.QuoteInput) (entities.Quote, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return entities.Quote{}, ErrInvalidClientName
	}

	breakdown, err := u.compute(input)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q := entities.Quote{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Input:      input,
		Breakdown:  breakdown,
		Status:     entities.QuoteStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	u.logger.Info("quote created",
		zap.String("quote_id", created.ID),
		zap.String("client_name", created.ClientName),
		zap.String("grand_total", created.Breakdown.GrandTotal.String()))
	return created, nil
}

func (u *QuoteUseCase) Recalculate(ctx context.Context, id string, input entities.QuoteInput) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	breakdown, err := u.compute(input)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.repo.UpdatePricing(ctx, current.ID, input, breakdown)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("update quote pricing: %w", err)
	}
	if updated.ID == "" {
		// Status changed between the read and the write.
		return entities.Quote{}, ErrQuoteNotPending
	}
	u.logger.Info("quote recalculated",
		zap.String("quote_id", updated.ID),
		zap.String("previous_total", current.Breakdown.GrandTotal.String()),
		zap.String("grand_total", updated.Breakdown.GrandTotal.String()))
	return updated, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, to entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, to)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, to)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("update quote status: %w", err)
	}
	if updated.ID == "" {
		return entities.Quote{}, fmt.Errorf("%w: %s changed concurrently", ErrInvalidStatusTransition, current.ID)
	}
	metrics.QuoteTransitions.WithLabelValues(string(to)).Inc()
	u.logger.Info("quote status changed",
		zap.String("quote_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
