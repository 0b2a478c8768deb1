package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"contractor_pipeline/internal/adapter/http/handlers/mocks"
	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("cancelled job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateInvoice(gomock.Any(), testTenant, gomock.Any()).
			Return(entities.Invoice{}, apperr.Conflict("job", "job-1", "job is cancelled"))

		r := newTenantRouter()
		r.POST("/v1/invoices", h.CreateInvoice)

		w := serve(r, http.MethodPost, "/v1/invoices", `{"job_id":"job-1","line_items":[{"description":"Work","quantity":"1","unit_price":"10"}]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "CONFLICT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("missing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := newTenantRouter()
		r.POST("/v1/invoices", h.CreateInvoice)

		w := serve(r, http.MethodPost, "/v1/invoices", `{"line_items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_IssueInvoice(t *testing.T) {
	issued := func(due time.Time) entities.Invoice {
		return entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusIssued, IssuedAtUtc: &t0, DueAtUtc: &due}
	}

	t.Run("empty body uses default term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().IssueInvoice(gomock.Any(), testTenant, "inv-1", gomock.Nil()).
			Return(issued(t0.Add(entities.DefaultInvoiceTerm)), []entities.StateTransitionEvent{transitionEvent(entities.EntityTypeInvoice, "inv-1", "draft", "issued")}, nil)

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/issue", h.IssueInvoice)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/issue", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("explicit due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		want := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().IssueInvoice(gomock.Any(), testTenant, "inv-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Tenant, _ string, dueAt *time.Time) (entities.Invoice, []entities.StateTransitionEvent, error) {
				if dueAt == nil || !dueAt.Equal(want) {
					t.Fatalf("unexpected due date: %v", dueAt)
				}
				return issued(*dueAt), nil, nil
			})

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/issue", h.IssueInvoice)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/issue", `{"due_at_utc":"2026-04-15T00:00:00Z"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := newTenantRouter()
		r.POST("/v1/invoices/:id/issue", h.IssueInvoice)

		w := serve(r, http.MethodPost, "/v1/invoices/inv-1/issue", `{"due_at_utc":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_MarkInvoicePaid_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	uc.EXPECT().MarkInvoicePaid(gomock.Any(), testTenant, "inv-1").
		Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, PaidAtUtc: &t0}, nil, nil)

	r := newTenantRouter()
	r.POST("/v1/invoices/:id/pay", h.MarkInvoicePaid)

	w := serve(r, http.MethodPost, "/v1/invoices/inv-1/pay", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	events, ok := body["events"].([]any)
	if !ok || len(events) != 0 {
		t.Fatalf("expected empty events, got %v", body["events"])
	}
}
