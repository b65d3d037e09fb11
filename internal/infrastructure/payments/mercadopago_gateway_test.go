package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("")
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_ChargeQuote(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.ChargeQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("forwards the request", func(t *testing.T) {
		fc := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
		g := &MercadoPagoGateway{client: fc}

		got, err := g.ChargeQuote(context.Background(), "q-1",
			json.RawMessage(`{"transaction_amount":1883,"payment_method_id":"pix","external_reference":"q-1"}`))
		require.NoError(t, err)
		assert.Equal(t, "42", got.ID)
		assert.Equal(t, "approved", got.Status)
		assert.Equal(t, 1883.0, fc.got.TransactionAmount)
		assert.Equal(t, "q-1", fc.got.ExternalReference)
		assert.True(t, json.Valid(got.Raw))
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{err: errors.New(`{"error":"bad_request","status":400}`)}}
		_, err := g.ChargeQuote(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		assert.Error(t, err)
	})

	t.Run("bad payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{}}
		_, err := g.ChargeQuote(context.Background(), "q-1", json.RawMessage(`{"transaction_amount":"lots"}`))
		assert.Error(t, err)
	})
}
