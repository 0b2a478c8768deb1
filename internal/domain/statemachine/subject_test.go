package statemachine

import (
	"errors"
	"testing"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
)

func TestApply_DispatchesByVariant(t *testing.T) {
	cases := []struct {
		name    string
		subject Subject
		target  string
		want    Change
	}{
		{
			name:    "lead",
			subject: LeadSubject{Lead: &entities.Lead{ID: "l-1", Status: entities.LeadStatusNew}},
			target:  "Lost",
			want:    Change{EntityType: entities.EntityTypeLead, EntityID: "l-1", From: "new", To: "lost", Changed: true},
		},
		{
			name:    "estimate",
			subject: EstimateSubject{Estimate: &entities.Estimate{ID: "e-1", Status: entities.EstimateStatusDraft}},
			target:  "sent",
			want:    Change{EntityType: entities.EntityTypeEstimate, EntityID: "e-1", From: "draft", To: "sent", Changed: true},
		},
		{
			name:    "job",
			subject: JobSubject{Job: &entities.Job{ID: "j-1", Status: entities.JobStatusScheduled}},
			target:  " in_progress ",
			want:    Change{EntityType: entities.EntityTypeJob, EntityID: "j-1", From: "scheduled", To: "in_progress", Changed: true},
		},
		{
			name:    "invoice already paid",
			subject: InvoiceSubject{Invoice: &entities.Invoice{ID: "i-1", Status: entities.InvoiceStatusPaid}},
			target:  "paid",
			want:    Change{EntityType: entities.EntityTypeInvoice, EntityID: "i-1", From: "paid", To: "paid", Changed: false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.subject, tc.target, t0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.want.OccurredAt = t0
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestApply_UnknownTargetIsValidation(t *testing.T) {
	lead := &entities.Lead{ID: "l-1", Status: entities.LeadStatusNew}
	_, err := Apply(LeadSubject{Lead: lead}, "archived", t0)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if lead.Status != entities.LeadStatusNew {
		t.Fatalf("lead mutated: %+v", lead)
	}
}

func TestChange_Event(t *testing.T) {
	c := Change{EntityType: entities.EntityTypeJob, EntityID: "j-1", From: "scheduled", To: "cancelled", OccurredAt: t0, Changed: true}
	ev := c.Event("org-1")
	if ev.OrganizationID != "org-1" || ev.EntityType != entities.EntityTypeJob || ev.EntityID != "j-1" ||
		ev.FromState != "scheduled" || ev.ToState != "cancelled" || !ev.OccurredAtUtc.Equal(t0) {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
