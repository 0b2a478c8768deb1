package handlers

import (
	"context"
	"net/http"
	"testing"

	"contractor_pipeline/internal/adapter/http/handlers/mocks"
	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := newTenantRouter()
		r.POST("/v1/leads", h.CreateLead)

		w := serve(r, http.MethodPost, "/v1/leads", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := newTenantRouter()
		r.POST("/v1/leads", h.CreateLead)

		w := serve(r, http.MethodPost, "/v1/leads", `{"email":"a@b.c"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CreateLead(gomock.Any(), testTenant, gomock.Any()).
			Return(entities.Lead{}, apperr.Validation("tax_rate_non_negative", "rate must not be negative"))

		r := newTenantRouter()
		r.POST("/v1/leads", h.CreateLead)

		w := serve(r, http.MethodPost, "/v1/leads", `{"name":"Ana","tax_lines":[{"label":"City","rate":"-1"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "VALIDATION_FAILED" || details["rule"] != "tax_rate_non_negative" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CreateLead(gomock.Any(), testTenant, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Tenant, in usecase.LeadInput) (entities.Lead, error) {
				if in.Name != "Ana" || len(in.TaxLines) != 1 || in.TaxLines[0].Label != "City" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Lead{ID: "lead-1", OrganizationID: testOrg, Name: in.Name, Status: entities.LeadStatusNew, CreatedAtUtc: t0, UpdatedAtUtc: t0}, nil
			})

		r := newTenantRouter()
		r.POST("/v1/leads", h.CreateLead)

		w := serve(r, http.MethodPost, "/v1/leads", `{"name":"Ana","tax_lines":[{"label":"City","rate":"2.5"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "lead-1" || body["status"] != "new" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	uc.EXPECT().GetLead(gomock.Any(), testTenant, "lead-404").Return(entities.Lead{}, apperr.NotFound("lead", "lead-404"))

	r := newTenantRouter()
	r.GET("/v1/leads/:id", h.GetLead)

	w := serve(r, http.MethodGet, "/v1/leads/lead-404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLeadHandler_SetLeadStatus(t *testing.T) {
	t.Run("forbidden edge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().SetLeadStatus(gomock.Any(), testTenant, "lead-1", "new").
			Return(entities.Lead{}, nil, apperr.TransitionConflict("lead", "lead-1", "lost", "new"))

		r := newTenantRouter()
		r.POST("/v1/leads/:id/status", h.SetLeadStatus)

		w := serve(r, http.MethodPost, "/v1/leads/lead-1/status", `{"status":"new"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "INVALID_TRANSITION" || details["from"] != "lost" || details["to"] != "new" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success returns events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		lost := entities.Lead{ID: "lead-1", OrganizationID: testOrg, Name: "Ana", Status: entities.LeadStatusLost, LostAtUtc: &t0}
		uc.EXPECT().SetLeadStatus(gomock.Any(), testTenant, "lead-1", "lost").
			Return(lost, []entities.StateTransitionEvent{transitionEvent(entities.EntityTypeLead, "lead-1", "new", "lost")}, nil)

		r := newTenantRouter()
		r.POST("/v1/leads/:id/status", h.SetLeadStatus)

		w := serve(r, http.MethodPost, "/v1/leads/lead-1/status", `{"status":"lost"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		data, _ := body["data"].(map[string]any)
		events, _ := body["events"].([]any)
		if data["status"] != "lost" || len(events) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLeadHandler_DeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	uc.EXPECT().DeleteLead(gomock.Any(), testTenant, "lead-1").Return(nil)

	r := newTenantRouter()
	r.DELETE("/v1/leads/:id", h.DeleteLead)

	w := serve(r, http.MethodDelete, "/v1/leads/lead-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
