package statemachine

import (
	"fmt"
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
)

// Subject is the closed set of entities that own a state machine. Apply picks
// the machine with a type switch over the variants below.
type Subject interface {
	subject()
}

type LeadSubject struct{ Lead *entities.Lead }
type EstimateSubject struct{ Estimate *entities.Estimate }
type JobSubject struct{ Job *entities.Job }
type InvoiceSubject struct{ Invoice *entities.Invoice }

func (LeadSubject) subject()     {}
func (EstimateSubject) subject() {}
func (JobSubject) subject()      {}
func (InvoiceSubject) subject()  {}

// Change is the kind-erased result of Apply.
type Change struct {
	EntityType entities.EntityType
	EntityID   string
	From       string
	To         string
	OccurredAt time.Time
	Changed    bool
}

// Event turns a change into the notification published after commit.
func (c Change) Event(organizationID string) entities.StateTransitionEvent {
	return entities.StateTransitionEvent{
		OrganizationID: organizationID,
		EntityType:     c.EntityType,
		EntityID:       c.EntityID,
		FromState:      c.From,
		ToState:        c.To,
		OccurredAtUtc:  c.OccurredAt.UTC(),
	}
}

// Apply transitions the subject to target, which must belong to the subject's
// status domain (Validation otherwise).
func Apply(s Subject, target string, now time.Time) (Change, error) {
	switch v := s.(type) {
	case LeadSubject:
		to, err := ParseStatus(entities.EntityTypeLead, target, entities.LeadStatuses)
		if err != nil {
			return Change{}, err
		}
		rec, err := LeadMachine.Transition(v.Lead, to, now)
		if err != nil {
			return Change{}, err
		}
		return toChange(entities.EntityTypeLead, v.Lead.ID, rec), nil
	case EstimateSubject:
		to, err := ParseStatus(entities.EntityTypeEstimate, target, entities.EstimateStatuses)
		if err != nil {
			return Change{}, err
		}
		rec, err := EstimateMachine.Transition(v.Estimate, to, now)
		if err != nil {
			return Change{}, err
		}
		return toChange(entities.EntityTypeEstimate, v.Estimate.ID, rec), nil
	case JobSubject:
		to, err := ParseStatus(entities.EntityTypeJob, target, entities.JobStatuses)
		if err != nil {
			return Change{}, err
		}
		rec, err := JobMachine.Transition(v.Job, to, now)
		if err != nil {
			return Change{}, err
		}
		return toChange(entities.EntityTypeJob, v.Job.ID, rec), nil
	case InvoiceSubject:
		to, err := ParseStatus(entities.EntityTypeInvoice, target, entities.InvoiceStatuses)
		if err != nil {
			return Change{}, err
		}
		rec, err := InvoiceMachine.Transition(v.Invoice, to, now)
		if err != nil {
			return Change{}, err
		}
		return toChange(entities.EntityTypeInvoice, v.Invoice.ID, rec), nil
	default:
		return Change{}, apperr.Validation("unknown_subject", "unsupported subject %T", s)
	}
}

// ParseStatus matches raw (case-insensitive, trimmed) against a closed status domain.
func ParseStatus[S ~string](kind entities.EntityType, raw string, domain []S) (S, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range domain {
		if string(s) == norm {
			return s, nil
		}
	}
	var zero S
	return zero, apperr.Validation("unknown_status", "%q is not a %s status (allowed: %s)", raw, kind, joinStatuses(domain))
}

func joinStatuses[S ~string](domain []S) string {
	parts := make([]string, len(domain))
	for i, s := range domain {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func toChange[S ~string](kind entities.EntityType, id string, rec Record[S]) Change {
	return Change{
		EntityType: kind,
		EntityID:   id,
		From:       string(rec.From),
		To:         string(rec.To),
		OccurredAt: rec.OccurredAt,
		Changed:    rec.Changed,
	}
}

// String renders a change for logs.
func (c Change) String() string {
	return fmt.Sprintf("%s %s %s->%s", c.EntityType, c.EntityID, c.From, c.To)
}
