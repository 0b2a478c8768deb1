package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/taxes"
	mock_interfaces "contractor_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_CreateLead(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewLeadUseCase(memory.New(), nil, testOptions(&fakeClock{now: t0})...)
		_, err := uc.CreateLead(context.Background(), tenant, LeadInput{Name: "  "})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("zero tenant", func(t *testing.T) {
		uc := NewLeadUseCase(memory.New(), nil)
		_, err := uc.CreateLead(context.Background(), entities.Tenant{}, LeadInput{Name: "Ada"})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		uc := NewLeadUseCase(memory.New(), nil, testOptions(&fakeClock{now: t0})...)
		_, err := uc.CreateLead(context.Background(), tenant, LeadInput{Name: "Ada", CompanyID: "co-404"})
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("success with tax lines", func(t *testing.T) {
		store := memory.New()
		uc := NewLeadUseCase(store, nil, testOptions(&fakeClock{now: t0})...)
		lead, err := uc.CreateLead(context.Background(), tenant, LeadInput{
			Name:           " Ada Lovelace ",
			Email:          "ada@example.com",
			EstimatedValue: dp("1200.505"),
			TaxLines: []taxes.Input{
				{Label: "State", Rate: d("6.25")},
				{Label: " ", Rate: d("1")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Name != "Ada Lovelace" || lead.Status != entities.LeadStatusNew || lead.OrganizationID != "org-1" {
			t.Fatalf("unexpected lead: %+v", lead)
		}
		if lead.EstimatedValue.String() != "1200.51" {
			t.Fatalf("expected estimated value rounded to 1200.51, got %s", lead.EstimatedValue)
		}
		if len(lead.TaxLines) != 1 || lead.TaxLines[0].LeadID != lead.ID {
			t.Fatalf("unexpected tax lines: %+v", lead.TaxLines)
		}

		got, err := uc.GetLead(context.Background(), tenant, lead.ID)
		if err != nil || got.ID != lead.ID {
			t.Fatalf("expected stored lead, got %+v err=%v", got, err)
		}
	})
}

func TestLeadUseCase_SetLeadStatus(t *testing.T) {
	t.Run("lost then new clears lost date and publishes after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memory.New()
		clock := &fakeClock{now: t0}
		sink := mock_interfaces.NewMockIEventSink(ctrl)
		uc := NewLeadUseCase(store, sink, testOptions(clock)...)
		seedLead(t, store, &entities.Lead{ID: "l-1", Name: "Ada"})

		sink.EXPECT().Publish(gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, events []entities.StateTransitionEvent) error {
				ev := events[0]
				if ev.EntityType != entities.EntityTypeLead || ev.FromState != "new" || ev.ToState != "lost" || ev.OrganizationID != "org-1" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return nil
			},
		)
		lost, events, err := uc.SetLeadStatus(context.Background(), tenant, "l-1", "Lost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lost.LostAtUtc == nil || !lost.LostAtUtc.Equal(t0) || len(events) != 1 {
			t.Fatalf("unexpected lost lead: %+v events=%v", lost, events)
		}

		clock.Advance(time.Hour)
		sink.EXPECT().Publish(gomock.Any(), gomock.Len(1)).Return(errors.New("broker down"))
		reopened, _, err := uc.SetLeadStatus(context.Background(), tenant, "l-1", "new")
		if err != nil {
			t.Fatalf("publish failure must not fail the operation, got %v", err)
		}
		if reopened.Status != entities.LeadStatusNew || reopened.LostAtUtc != nil {
			t.Fatalf("expected lost date cleared, got %+v", reopened)
		}

		stored, _ := uc.GetLead(context.Background(), tenant, "l-1")
		if stored.LostAtUtc != nil || stored.Version != 3 {
			t.Fatalf("unexpected stored lead: %+v", stored)
		}
	})

	t.Run("invalid edge is a conflict and publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := memory.New()
		sink := mock_interfaces.NewMockIEventSink(ctrl)
		uc := NewLeadUseCase(store, sink, testOptions(&fakeClock{now: t0})...)
		seedLead(t, store, &entities.Lead{ID: "l-1", Name: "Ada", Status: entities.LeadStatusConverted})

		_, _, err := uc.SetLeadStatus(context.Background(), tenant, "l-1", "lost")
		var appErr *apperr.Error
		if !errors.As(err, &appErr) || appErr.Kind != apperr.KindConflict || appErr.From != "converted" || appErr.To != "lost" {
			t.Fatalf("expected transition conflict, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		store := memory.New()
		uc := NewLeadUseCase(store, nil, testOptions(&fakeClock{now: t0})...)
		seedLead(t, store, &entities.Lead{ID: "l-1", Name: "Ada"})

		_, _, err := uc.SetLeadStatus(context.Background(), tenant, "l-1", "archived")
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestLeadUseCase_UpdateAndDelete(t *testing.T) {
	store := memory.New()
	uc := NewLeadUseCase(store, nil, testOptions(&fakeClock{now: t0})...)
	seedLead(t, store, &entities.Lead{ID: "l-1", Name: "Ada", TaxLines: []entities.TaxLine{{ID: "tx-1", Label: "Old"}}})

	t.Run("nil tax lines keep the current set", func(t *testing.T) {
		lead, err := uc.UpdateLead(context.Background(), tenant, "l-1", LeadInput{Name: "Ada L."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Name != "Ada L." || len(lead.TaxLines) != 1 || lead.TaxLines[0].Label != "Old" {
			t.Fatalf("unexpected lead: %+v", lead)
		}
	})

	t.Run("empty tax lines clear them", func(t *testing.T) {
		lead, err := uc.UpdateLead(context.Background(), tenant, "l-1", LeadInput{Name: "Ada L.", TaxLines: []taxes.Input{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lead.TaxLines) != 0 {
			t.Fatalf("expected no tax lines, got %+v", lead.TaxLines)
		}
	})

	t.Run("deleted lead is not found", func(t *testing.T) {
		if err := uc.DeleteLead(context.Background(), tenant, "l-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetLead(context.Background(), tenant, "l-1"); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if err := uc.DeleteLead(context.Background(), tenant, "l-1"); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found on second delete, got %v", err)
		}
	})

	t.Run("other tenant cannot see the lead", func(t *testing.T) {
		seedLead(t, store, &entities.Lead{ID: "l-2", Name: "Grace"})
		_, err := uc.GetLead(context.Background(), entities.MustTenant("org-2"), "l-2")
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
