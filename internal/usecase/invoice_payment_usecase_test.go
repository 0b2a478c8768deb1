package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
	mock_interfaces "contractor_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPaymentFixture(t *testing.T, status entities.InvoiceStatus, gateway *mock_interfaces.MockIPaymentGateway, settings PaymentSettings) (*InvoicePaymentUseCase, *recordingSink) {
	t.Helper()
	store := memory.New()
	seedInvoice(t, store, &entities.Invoice{ID: "i-1", JobID: "j-1", Status: status, Amount: d("324.75")})
	sink := &recordingSink{}
	var gw interfaces.IPaymentGateway
	if gateway != nil {
		gw = gateway
	}
	return NewInvoicePaymentUseCase(store, sink, gw, settings, testOptions(&fakeClock{now: t0})...), sink
}

func TestInvoicePaymentUseCase_CollectPayment_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payload", func(t *testing.T) {
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, nil, PaymentSettings{})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) || !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, nil, PaymentSettings{})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, nil, PaymentSettings{})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("draft invoice is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusDraft, mock_interfaces.NewMockIPaymentGateway(ctrl), PaymentSettings{})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, apperr.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, mock_interfaces.NewMockIPaymentGateway(ctrl), PaymentSettings{})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, mock_interfaces.NewMockIPaymentGateway(ctrl), PaymentSettings{AccessToken: "APP_USR-1"})
		_, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_CollectPayment_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc, sink := newPaymentFixture(t, entities.InvoiceStatusOverdue, gateway, PaymentSettings{AccessToken: "TEST-123"})

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("invalid payload sent: %v", err)
			}
			if req["external_reference"] != "i-1" || req["transaction_amount"] != 324.75 {
				t.Fatalf("payload not enriched: %+v", req)
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
				t.Fatalf("expected sandbox payer defaults, got %+v", payer)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
		},
	)

	res, err := uc.CollectPayment(ctx, tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Payment.Status != entities.PaymentStatusApproved || res.Payment.ProviderPaymentID != "mp-1" || !res.Payment.Amount.Equal(d("324.75")) {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if res.Payment.ProviderPayload["status"] != "approved" {
		t.Fatalf("expected parsed provider payload, got %+v", res.Payment.ProviderPayload)
	}
	if res.Invoice.Status != entities.InvoiceStatusPaid || res.Invoice.PaidAtUtc == nil {
		t.Fatalf("expected paid invoice, got %+v", res.Invoice)
	}
	if len(res.Events) != 1 || res.Events[0].FromState != "overdue" || len(sink.all()) != 1 {
		t.Fatalf("unexpected events: %+v", res.Events)
	}

	payments, err := uc.ListPayments(ctx, tenant, "i-1")
	if err != nil || len(payments) != 1 || payments[0].OrganizationID != "org-1" {
		t.Fatalf("unexpected payments: %+v err=%v", payments, err)
	}
}

func TestInvoicePaymentUseCase_CollectPayment_PendingKeepsInvoiceOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc, sink := newPaymentFixture(t, entities.InvoiceStatusIssued, gateway, PaymentSettings{})
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{"id":"mp-2"}`), nil)

	res, err := uc.CollectPayment(context.Background(), tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"42"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Payment.Status != entities.PaymentStatusPending || res.Invoice.Status != entities.InvoiceStatusIssued || len(res.Events) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(sink.batches) != 0 {
		t.Fatalf("expected nothing published, got %+v", sink.batches)
	}
}

func TestInvoicePaymentUseCase_CollectPayment_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request", err: errors.New(`{"error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "invalid users", err: errors.New(`{"message":"Invalid users involved","code":2034}`), want: ErrPaymentGatewayInvalidUsers},
		{name: "customer not found", err: errors.New(`{"message":"Customer not found","code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, gateway, PaymentSettings{})
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CollectPayment(context.Background(), tenant, "i-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			payments, _ := uc.ListPayments(context.Background(), tenant, "i-1")
			if len(payments) != 0 {
				t.Fatalf("failed gateway call must not record a payment, got %+v", payments)
			}
		})
	}
}

func TestInvoicePaymentUseCase_CollectPayment_MockMode(t *testing.T) {
	uc, _ := newPaymentFixture(t, entities.InvoiceStatusIssued, nil, PaymentSettings{MockMode: true})
	res, err := uc.CollectPayment(context.Background(), tenant, "i-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Payment.Status != entities.PaymentStatusApproved || res.Invoice.Status != entities.InvoiceStatusPaid {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Payment.ProviderPayload["external_reference"] != "i-1" || res.Payment.ProviderPayload["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock provider payload: %+v", res.Payment.ProviderPayload)
	}
}
