package routes

import (
	"fightreel_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler) {
	rg.GET(PathCatalog, quoteHandler.Catalog)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/calculate", quoteHandler.Calculate)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.RecalculateQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
		quotes.GET("/:id/summary", quoteHandler.QuoteSummary)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePayment)
		payments.GET("/:quote_id", paymentHandler.GetPayment)
		payments.GET("/:quote_id/history", paymentHandler.ListPayments)
	}
}
