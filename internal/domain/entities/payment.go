package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is a payment taken against an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the provider response body as received; ProviderPayload is
// the parsed form when it is a JSON object.
type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`
	Amount  float64       `json:"amount"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
