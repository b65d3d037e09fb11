package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/usecase/interfaces"
	mock_interfaces "fightreel_quotes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func approvedQuote() entities.Quote {
	return entities.Quote{
		ID:         "q-1",
		ClientName: "Iron Gym",
		Status:     entities.QuoteStatusApproved,
		Breakdown:  entities.QuoteBreakdown{GrandTotal: decimal.NewFromInt(1883)},
	}
}

func TestQuotePaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, nil, PaymentOptions{})

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_CreateAndApprove_QuoteChecks(t *testing.T) {
	cases := []struct {
		name  string
		quote entities.Quote
		want  error
	}{
		{name: "not found", quote: entities.Quote{}, want: ErrQuoteNotFound},
		{name: "pending quote", quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, want: ErrQuoteNotApproved},
		{name: "cancelled quote", quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelled}, want: ErrQuoteNotApproved},
		{name: "zero total", quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, Breakdown: entities.QuoteBreakdown{GrandTotal: decimal.Zero}}, want: ErrNothingToCharge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
			quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway, PaymentOptions{})

			quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(tc.quote, nil)

			_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("quote repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway, PaymentOptions{})

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway, PaymentOptions{})

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("missing payer without test email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway, PaymentOptions{})

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("array payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway, PaymentOptions{})

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_CreateAndApprove_Gateway(t *testing.T) {
	t.Run("charges the stored grand total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway, PaymentOptions{TestPayerEmail: "test@fightreel.dev"})
		uc.now = fixedNow

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
		gateway.EXPECT().ChargeQuote(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, body json.RawMessage) (interfaces.ProviderPayment, error) {
			var req map[string]any
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("gateway got invalid json: %v", err)
			}
			if req["transaction_amount"] != float64(1883) {
				t.Fatalf("expected transaction_amount 1883, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "q-1" {
				t.Fatalf("expected external_reference q-1, got %v", req["external_reference"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "test@fightreel.dev" {
				t.Fatalf("expected test payer email, got %v", payer["email"])
			}
			return interfaces.ProviderPayment{ID: "mp-9", Status: "approved", Raw: json.RawMessage(`{"id":"mp-9","status":"approved"}`)}, nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
			return p, nil
		})

		got, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-9" || got.QuoteID != "q-1" || got.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", got)
		}
		if got.Amount != 1883 {
			t.Fatalf("expected amount 1883, got %v", got.Amount)
		}
		if !got.Date.Equal(fixedNow()) {
			t.Fatalf("unexpected date %v", got.Date)
		}
		if got.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", got.ProviderPayload)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			body string
			want error
		}{
			{body: `{"message":"Customer not found","status":404}`, want: ErrPaymentGatewayCustomerNotFound},
			{body: `{"error":"unauthorized","status":401}`, want: ErrPaymentGatewayUnauthorized},
			{body: `{"error":"bad_request","message":"x","status":400}`, want: ErrPaymentGatewayBadRequest},
		}
		for _, tc := range cases {
			body, want := tc.body, tc.want
			ctrl := gomock.NewController(t)
			quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotePaymentUseCase(nil, quoteRepo, gateway, PaymentOptions{})

			quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
			gateway.EXPECT().ChargeQuote(gomock.Any(), "q-1", gomock.Any()).Return(interfaces.ProviderPayment{}, errors.New(body))

			_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if !errors.Is(err, want) {
				t.Fatalf("body %s: expected %v, got %v", body, want, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("rejected provider status is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotePaymentUseCase(repo, quoteRepo, gateway, PaymentOptions{})

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
		gateway.EXPECT().ChargeQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(interfaces.ProviderPayment{ID: "mp-1", Status: "rejected", Raw: json.RawMessage(`{"status":"rejected"}`)}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
			return p, nil
		})

		got, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"a@b.c"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied, got %s", got.Status)
		}
	})
}

func TestQuotePaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuotePaymentUseCase(repo, quoteRepo, nil, PaymentOptions{MockMode: true})
	uc.now = fixedNow

	quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
		return p, nil
	})

	got, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if got.ID == "" || got.ProviderPayload["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock payment: %+v", got)
	}
}

func TestQuotePaymentUseCase_Lookups(t *testing.T) {
	t.Run("get empty id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil, PaymentOptions{})

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.QuotePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("latest picks the newest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil, PaymentOptions{})
		base := fixedNow()

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "p-1", Date: base},
			{ID: "p-3", Date: base.Add(2 * time.Hour)},
			{ID: "p-2", Date: base.Add(time.Hour)},
		}, nil)

		got, err := uc.LatestByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "p-3" {
			t.Fatalf("expected p-3, got %s", got.ID)
		}
	})

	t.Run("history is oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil, PaymentOptions{})
		base := fixedNow()

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "p-2", Date: base.Add(time.Hour)},
			{ID: "p-1", Date: base},
		}, nil)

		got, err := uc.ListByQuoteID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("history requires a quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.ListByQuoteID(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("latest with no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		uc := NewQuotePaymentUseCase(repo, nil, nil, PaymentOptions{})

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		_, err := uc.LatestByQuoteID(context.Background(), "q-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
