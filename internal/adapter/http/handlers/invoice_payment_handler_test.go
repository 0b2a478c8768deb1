package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"contractor_pipeline/internal/adapter/http/handlers/mocks"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoicePaymentHandler_CollectPayment(t *testing.T) {
	paidResult := usecase.CollectPaymentResult{
		Payment: entities.InvoicePayment{ID: "pay-1", InvoiceID: "inv-1", Amount: decimal.RequireFromString("324.75"), Date: t0, Status: entities.PaymentStatusApproved},
		Invoice: entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, PaidAtUtc: &t0},
		Events:  []entities.StateTransitionEvent{transitionEvent(entities.EntityTypeInvoice, "inv-1", "issued", "paid")},
	}

	t.Run("unwraps mp_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().CollectPayment(gomock.Any(), testTenant, "inv-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Tenant, _ string, payload json.RawMessage) (usecase.CollectPaymentResult, error) {
				if string(payload) != `{"token":"tok"}` {
					t.Fatalf("unexpected payload %s", payload)
				}
				return paidResult, nil
			})

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/payments", h.CollectPayment)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"mp_payload":{"token":"tok"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		payment, _ := body["payment"].(map[string]any)
		invoice, _ := body["invoice"].(map[string]any)
		if payment["amount"] != "324.75" || invoice["status"] != "paid" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("bare payload passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().CollectPayment(gomock.Any(), testTenant, "inv-1", json.RawMessage(`{"installments":1}`)).Return(paidResult, nil)

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/payments", h.CollectPayment)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"installments":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json reaches usecase as nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().CollectPayment(gomock.Any(), testTenant, "inv-1", gomock.Nil()).
			Return(usecase.CollectPaymentResult{}, usecase.ErrInvalidPaymentPayload)

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/payments", h.CollectPayment)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"mp_payload":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().CollectPayment(gomock.Any(), testTenant, "inv-1", gomock.Any()).
			Return(usecase.CollectPaymentResult{}, usecase.ErrPaymentGatewayUnauthorized)

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/payments", h.CollectPayment)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/payments", `{}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestInvoicePaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
	h := NewInvoicePaymentHandler(uc)

	uc.EXPECT().ListPayments(gomock.Any(), testTenant, "inv-1").Return([]entities.InvoicePayment{
		{ID: "pay-1", InvoiceID: "inv-1", Amount: decimal.RequireFromString("10"), Status: entities.PaymentStatusDenied},
	}, nil)

	r := newTenantRouter()
	r.GET("/v1/invoices/:id/payments", h.ListPayments)

	w := serve(r, http.MethodGet, "/v1/invoices/inv-1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 || list[0]["status"] != "denied" {
		t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
	}
}
