package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "create and process payment" route.
//
// `mp_payload` is forwarded to Mercado Pago after the service fills the amount and
// reference, so it can carry any provider fields (payment_method_id, token, payer).

type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
