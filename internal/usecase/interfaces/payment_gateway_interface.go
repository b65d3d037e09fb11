package interfaces

import (
	"context"
	"encoding/json"
)

// ProviderPayment is what the payment provider reports back for one charge.
// Raw is the provider response kept verbatim on the stored payment.
type ProviderPayment struct {
	ID     string
	Status string
	Raw    json.RawMessage
}

// IPaymentGateway charges an approved quote through an external provider (Mercado Pago).
type IPaymentGateway interface {
	ChargeQuote(ctx context.Context, quoteID string, request json.RawMessage) (ProviderPayment, error)
}
