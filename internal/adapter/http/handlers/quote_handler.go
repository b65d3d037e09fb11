package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	request "fightreel_quotes/internal/adapter/http/dto/request"
	response "fightreel_quotes/internal/adapter/http/dto/response"
	"fightreel_quotes/internal/adapter/export"
	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/domain/pricing"
	"fightreel_quotes/internal/usecase"
	"fightreel_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for production quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Catalog godoc
// @Summary      List the add-on catalog and video rates
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *QuoteHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}

// Calculate godoc
// @Summary      Preview a quote without storing it
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteInputRequest  true  "Quote input"
// @Success      200   {object}  response.BreakdownResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /quotes/calculate [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var payload request.QuoteInputRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}

	b, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

// CreateQuote godoc
// @Summary      Price and store a quote for a client
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateQuoteRequest  true  "Client and quote input"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.ClientName, payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary      Fetch a stored quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// RecalculateQuote godoc
// @Summary      Reprice a pending quote from new inputs
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Quote ID"
// @Param        body  body      request.QuoteInputRequest  true  "Quote input"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) RecalculateQuote(c *gin.Context) {
	var payload request.QuoteInputRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}

	q, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ApproveQuote godoc
// @Summary      Approve a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Approve)
}

// RejectQuote godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

// CancelQuote godoc
// @Summary      Cancel a pending or approved quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Cancel)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// QuoteSummary godoc
// @Summary      Plain-text summary of a stored quote
// @Tags         quotes
// @Produce      plain
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {string}  string
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/summary [get]
func (h *QuoteHandler) QuoteSummary(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.String(http.StatusOK, export.FormatSummary(q.ClientName, q.Input, q.Breakdown))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapBindError reports a JSON type mismatch against the offending field, e.g. a
// fractional crew_size.
func mapBindError(err error) *pkg.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errInvalidQuotePayload.WithFields(pkg.FieldDetail{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		})
	}
	return errInvalidQuotePayload
}

func mapQuoteError(err error) *pkg.AppError {
	var verrs pricing.ValidationErrors
	var cfgErr *pricing.ConfigurationError
	switch {
	case errors.As(err, &verrs):
		fields := make([]pkg.FieldDetail, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, pkg.FieldDetail{Field: fe.Field, Message: fe.Message})
		}
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote input", err, http.StatusBadRequest).WithFields(fields...)
	case errors.As(err, &cfgErr):
		return pkg.NewDomainError("CATALOG_MISCONFIGURED", "Pricing catalog is misconfigured", err, http.StatusInternalServerError).
			WithFields(pkg.FieldDetail{Field: cfgErr.Field, Message: cfgErr.Message})
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quote cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Only pending quotes can be recalculated", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
