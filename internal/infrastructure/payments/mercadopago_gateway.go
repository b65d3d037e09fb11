package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentCreator is the part of payment.Client the gateway uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client paymentCreator
	logger *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := logger.Log.With(zap.String("component", "mercadopago"))
	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: log}, nil
}

// ChargeQuote decodes request into the SDK payment request and creates it.
func (g *MercadoPagoGateway) ChargeQuote(ctx context.Context, quoteID string, request json.RawMessage) (interfaces.ProviderPayment, error) {
	if g == nil || g.client == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.logger
	if log == nil {
		log = logger.Log
	}
	log = log.With(zap.String("quote_id", quoteID))
	log.Debug("create payment", zap.Int("payload_len", len(request)))

	var req payment.Request
	if err := json.Unmarshal(request, &req); err != nil {
		log.Error("payload unmarshal failed", zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("sdk create failed", zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Error("response marshal failed", zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}
	out := interfaces.ProviderPayment{ID: fmt.Sprintf("%d", resp.ID), Status: resp.Status, Raw: raw}
	log.Info("payment created",
		zap.String("provider_payment_id", out.ID),
		zap.String("provider_status", out.Status))
	return out, nil
}
