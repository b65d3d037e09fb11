package response

import (
	"time"

	"fightreel_quotes/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
