package usecase

import (
	"context"
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/ledger"
	"contractor_pipeline/internal/domain/statemachine"
	"contractor_pipeline/internal/usecase/interfaces"
)

type EstimateInput struct {
	LeadID      string
	Description string
	LineItems   []ledger.LineInput
}

// UpdateEstimateInput edits a draft. Nil fields are left untouched; a non-nil
// LineItems replaces the whole line set.
type UpdateEstimateInput struct {
	Description *string
	LineItems   []ledger.LineInput
}

// MilestoneTemplate becomes a Pending milestone of the job created on accept.
type MilestoneTemplate struct {
	Title         string
	Notes         string
	OccurredAtUtc *time.Time
}

type AcceptEstimateInput struct {
	Title             string
	StartAtUtc        time.Time
	EstimatedEndAtUtc time.Time
	Milestones        []MilestoneTemplate
}

type AcceptEstimateResult struct {
	Estimate entities.Estimate
	Job      entities.Job
	Events   []entities.StateTransitionEvent
}

// IEstimateUseCase exposes the quote side of the pipeline.
//
// Estimates drop blank-description lines while invoices reject them
// (ledger.DropBlank vs ledger.RejectBlank).
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, tenant entities.Tenant, in EstimateInput) (entities.Estimate, error)
	GetEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, error)
	UpdateEstimate(ctx context.Context, tenant entities.Tenant, id string, in UpdateEstimateInput) (entities.Estimate, error)
	SendEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, []entities.StateTransitionEvent, error)
	AcceptEstimate(ctx context.Context, tenant entities.Tenant, id string, in AcceptEstimateInput) (AcceptEstimateResult, error)
	RejectEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, []entities.StateTransitionEvent, error)
}

type EstimateUseCase struct {
	pipeline
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, opts ...Option) *EstimateUseCase {
	return &EstimateUseCase{pipeline: newPipeline(uow, sink, opts...)}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, tenant entities.Tenant, in EstimateInput) (entities.Estimate, error) {
	leadID, err := requireID(entities.EntityTypeLead, in.LeadID)
	if err != nil {
		return entities.Estimate{}, err
	}
	lines, err := ledger.Build(in.LineItems, ledger.DropBlank, u.newID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.now()
	est := &entities.Estimate{
		ID:           u.newID(),
		LeadID:       leadID,
		Description:  strings.TrimSpace(in.Description),
		Status:       entities.EstimateStatusDraft,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}
	setEstimateLines(est, lines)

	_, err = u.run(ctx, tenant, "create-estimate", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		// Lost or converted leads may still be quoted.
		if _, err := loadLead(ctx, tx, leadID); err != nil {
			return err
		}
		return tx.Estimates().Save(ctx, est)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return *est, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, error) {
	id, err := requireID(entities.EntityTypeEstimate, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	var out *entities.Estimate
	_, err = u.run(ctx, tenant, "get-estimate", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		out, err = tx.Estimates().Get(ctx, id)
		return err
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return *out, nil
}

// UpdateEstimate edits a Draft estimate and recomputes its totals.
func (u *EstimateUseCase) UpdateEstimate(ctx context.Context, tenant entities.Tenant, id string, in UpdateEstimateInput) (entities.Estimate, error) {
	id, err := requireID(entities.EntityTypeEstimate, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	var lines []entities.LineItem
	if in.LineItems != nil {
		if lines, err = ledger.Build(in.LineItems, ledger.DropBlank, u.newID); err != nil {
			return entities.Estimate{}, err
		}
	}

	now := u.now()
	var out *entities.Estimate
	_, err = u.run(ctx, tenant, "update-estimate", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		est, err := tx.Estimates().Get(ctx, id)
		if err != nil {
			return err
		}
		if est.Status != entities.EstimateStatusDraft {
			return apperr.Conflict(string(entities.EntityTypeEstimate), id, "only draft estimates can be edited (status %s)", est.Status)
		}
		if in.Description != nil {
			est.Description = strings.TrimSpace(*in.Description)
		}
		if in.LineItems != nil {
			setEstimateLines(est, lines)
		}
		est.UpdatedAtUtc = now
		out = est
		return tx.Estimates().Save(ctx, est)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return *out, nil
}

func (u *EstimateUseCase) SendEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, []entities.StateTransitionEvent, error) {
	return u.transition(ctx, tenant, id, entities.EstimateStatusSent)
}

func (u *EstimateUseCase) RejectEstimate(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, []entities.StateTransitionEvent, error) {
	return u.transition(ctx, tenant, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) transition(ctx context.Context, tenant entities.Tenant, id string, to entities.EstimateStatus) (entities.Estimate, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeEstimate, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	now := u.now()
	var out *entities.Estimate
	events, err := u.run(ctx, tenant, "estimate-"+string(to), func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		est, err := tx.Estimates().Get(ctx, id)
		if err != nil {
			return err
		}
		change, err := statemachine.Apply(statemachine.EstimateSubject{Estimate: est}, string(to), now)
		if err != nil {
			return err
		}
		ch.add(change)
		out = est
		return tx.Estimates().Save(ctx, est)
	})
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	return *out, events, nil
}

// AcceptEstimate moves a Sent estimate to Accepted and creates its Scheduled
// job in the same unit of work. A lead still in New is converted alongside.
func (u *EstimateUseCase) AcceptEstimate(ctx context.Context, tenant entities.Tenant, id string, in AcceptEstimateInput) (AcceptEstimateResult, error) {
	id, err := requireID(entities.EntityTypeEstimate, id)
	if err != nil {
		return AcceptEstimateResult{}, err
	}
	if err := validateAcceptInput(in); err != nil {
		return AcceptEstimateResult{}, err
	}

	now := u.now()
	var est *entities.Estimate
	var job *entities.Job
	events, err := u.run(ctx, tenant, "accept-estimate", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		var err error
		est, err = tx.Estimates().Get(ctx, id)
		if err != nil {
			return err
		}
		change, err := statemachine.Apply(statemachine.EstimateSubject{Estimate: est}, string(entities.EstimateStatusAccepted), now)
		if err != nil {
			return err
		}
		ch.add(change)

		job = u.newJob(est, in, now)
		est.JobID = job.ID
		if err := tx.Estimates().Save(ctx, est); err != nil {
			return err
		}

		lead, err := tx.Leads().Get(ctx, est.LeadID)
		if err != nil {
			return err
		}
		if lead.Status == entities.LeadStatusNew && !lead.IsDeleted {
			leadChange, err := statemachine.Apply(statemachine.LeadSubject{Lead: lead}, string(entities.LeadStatusConverted), now)
			if err != nil {
				return err
			}
			ch.add(leadChange)
			if err := tx.Leads().Save(ctx, lead); err != nil {
				return err
			}
		}

		return tx.Jobs().Save(ctx, job)
	})
	if err != nil {
		return AcceptEstimateResult{}, err
	}
	return AcceptEstimateResult{Estimate: *est, Job: *job, Events: events}, nil
}

func (u *EstimateUseCase) newJob(est *entities.Estimate, in AcceptEstimateInput, now time.Time) *entities.Job {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = est.Description
	}
	job := &entities.Job{
		ID:                u.newID(),
		LeadID:            est.LeadID,
		EstimateID:        est.ID,
		Title:             title,
		StartAtUtc:        in.StartAtUtc.UTC(),
		EstimatedEndAtUtc: in.EstimatedEndAtUtc.UTC(),
		Milestones:        make([]entities.JobMilestone, 0, len(in.Milestones)),
		Expenses:          []entities.JobExpense{},
		Status:            entities.JobStatusScheduled,
		CreatedAtUtc:      now,
		UpdatedAtUtc:      now,
	}
	for i, m := range in.Milestones {
		job.Milestones = append(job.Milestones, entities.JobMilestone{
			ID:            u.newID(),
			Title:         strings.TrimSpace(m.Title),
			Notes:         strings.TrimSpace(m.Notes),
			OccurredAtUtc: utcPtr(m.OccurredAtUtc),
			SortOrder:     i,
			Status:        entities.MilestoneStatusPending,
		})
	}
	return job
}

func validateAcceptInput(in AcceptEstimateInput) error {
	if in.StartAtUtc.IsZero() {
		return apperr.Validation("start_at_required", "job start date is required")
	}
	if in.EstimatedEndAtUtc.IsZero() {
		return apperr.Validation("end_at_required", "job estimated end date is required")
	}
	if in.EstimatedEndAtUtc.Before(in.StartAtUtc) {
		return apperr.Validation("end_after_start", "job estimated end must not precede its start")
	}
	for i, m := range in.Milestones {
		if strings.TrimSpace(m.Title) == "" {
			return apperr.Validation("milestone_title_required", "milestone %d: title is required", i)
		}
	}
	return nil
}

func setEstimateLines(est *entities.Estimate, lines []entities.LineItem) {
	totals := ledger.Compute(lines)
	est.LineItems = lines
	est.Subtotal = totals.Subtotal
	est.TaxTotal = totals.TaxTotal
	est.Amount = totals.Total
}
