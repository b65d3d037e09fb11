package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/metrics"
	"fightreel_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("quote payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrQuoteNotApproved               = errors.New("quote not approved")
	ErrNothingToCharge                = errors.New("quote grand total is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IQuotePaymentUseCase charges approved quotes.
//
// The amount charged is always the stored grand total; any amount in the caller's
// payload is overwritten.

type IQuotePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
	LatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error)
}

// PaymentOptions tunes the payment flow.
//
// MockMode skips the external gateway and fabricates an approved provider response.
// TestPayerEmail fills payer.email when the caller sent neither payer id nor email.
type PaymentOptions struct {
	MockMode       bool
	TestPayerEmail string
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		opts:      opts,
		logger:    logger.Log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotePaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	log := u.logger.With(zap.String("quote_id", quoteID))

	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.opts.MockMode {
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("failed loading quote", zap.Error(err))
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		log.Info("quote not approved", zap.String("status", string(q.Status)))
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}
	amount := q.Breakdown.GrandTotal.InexactFloat64()
	if amount <= 0 {
		return entities.QuotePayment{}, ErrNothingToCharge
	}

	req := map[string]any{}
	if err := json.Unmarshal(providerPayload, &req); err != nil {
		// A JSON array or scalar is valid JSON but not a payment request.
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if !u.opts.MockMode && !hasNonEmptyString(req, "payment_method_id") {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	ensurePayerDefaults(req, u.opts.TestPayerEmail)
	if !u.opts.MockMode && !hasPayer(req) {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = q.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Production quote %s for %s", q.ID, q.ClientName)
	}
	req["transaction_amount"] = amount

	body, err := json.Marshal(req)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	var charged interfaces.ProviderPayment
	if u.opts.MockMode {
		log.Info("mock mode enabled; skipping payment gateway")
		charged, err = u.mockProviderResponse(req)
	} else {
		charged, err = u.gateway.ChargeQuote(ctx, q.ID, body)
		err = classifyGatewayError(err)
	}
	if err != nil {
		metrics.Payments.WithLabelValues("gateway_error").Inc()
		log.Error("payment gateway failed", zap.Error(err))
		return entities.QuotePayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(charged.Raw, &parsed); err != nil {
		log.Warn("provider response is not a json object", zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:                 charged.ID,
		QuoteID:            q.ID,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(charged.Status),
		Amount:             amount,
		ProviderPayloadRaw: charged.Raw,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	metrics.Payments.WithLabelValues(string(created.Status)).Inc()
	log.Info("payment recorded",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount))
	return created, nil
}

func (u *QuotePaymentUseCase) mockProviderResponse(req map[string]any) (interfaces.ProviderPayment, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderPayment{}, err
	}
	return interfaces.ProviderPayment{ID: id, Status: "approved", Raw: b}, nil
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func ensurePayerDefaults(m map[string]any, testPayerEmail string) {
	if _, ok := m["payer"]; !ok || m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && testPayerEmail != "" {
		payer["email"] = testPayerEmail
	}
}

// classifyGatewayError maps provider error bodies onto sentinels the handlers understand.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(payments, func(a, b entities.QuotePayment) int {
		return a.Date.Compare(b.Date)
	})
	return payments, nil
}

// LatestByQuoteID returns the most recent payment recorded for a quote.
func (u *QuotePaymentUseCase) LatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error) {
	payments, err := u.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(payments) == 0 {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	return payments[len(payments)-1], nil
}
