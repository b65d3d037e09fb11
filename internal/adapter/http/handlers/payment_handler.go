package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "fightreel_quotes/internal/adapter/http/dto/response"
	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/usecase"
	"fightreel_quotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for quote payments.

type PaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
}

func NewPaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Charge an approved quote
// @Description  The amount is always the stored grand total. The body is either the raw provider payload or {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string                        true  "Quote ID"
// @Param        body      body      request.PaymentCreateRequest  false "Provider payload"
// @Success      200       {object}  response.PaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log := logger.Log.With(zap.String("quote_id", quoteID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payment payload", zap.Error(err))
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
		log.Debug("payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		log.Warn("payment failed", zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPayment godoc
// @Summary      Latest payment recorded for a quote
// @Tags         payments
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.PaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	latest, err := h.usecase.LatestByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// ListPayments godoc
// @Summary      Every payment recorded for a quote, oldest first
// @Tags         payments
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {array}   response.PaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /payments/{quote_id}/history [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	list, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	out := make([]response.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, response.FromQuotePayment(p))
	}
	c.JSON(http.StatusOK, out)
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Quote total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
