package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/ledger"
	"contractor_pipeline/internal/domain/statemachine"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	entityMilestone = "job_milestone"
	entityExpense   = "job_expense"
)

// MilestoneInput adds or edits a milestone. A nil SortOrder appends on add
// and keeps the current position on update.
type MilestoneInput struct {
	Title         string
	Notes         string
	OccurredAtUtc *time.Time
	SortOrder     *int
}

type ExpenseInput struct {
	Vendor     string
	Category   string
	Amount     decimal.Decimal
	SpentAtUtc time.Time
	ReceiptURL string
}

// IJobUseCase drives the job machine and edits the milestones and expenses of
// a job. Milestones are frozen once the job is Completed or Cancelled; expenses
// can still be added then, but no longer edited or removed.
type IJobUseCase interface {
	GetJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, error)
	StartJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error)
	CompleteJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error)
	CancelJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error)

	AddMilestone(ctx context.Context, tenant entities.Tenant, jobID string, in MilestoneInput) (entities.Job, error)
	UpdateMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string, in MilestoneInput) (entities.Job, error)
	DeleteMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string) (entities.Job, error)
	ReorderMilestones(ctx context.Context, tenant entities.Tenant, jobID string, milestoneIDs []string) (entities.Job, error)
	CompleteMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string) (entities.Job, error)

	AddExpense(ctx context.Context, tenant entities.Tenant, jobID string, in ExpenseInput) (entities.Job, error)
	UpdateExpense(ctx context.Context, tenant entities.Tenant, jobID, expenseID string, in ExpenseInput) (entities.Job, error)
	DeleteExpense(ctx context.Context, tenant entities.Tenant, jobID, expenseID string) (entities.Job, error)
}

type JobUseCase struct {
	pipeline
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, opts ...Option) *JobUseCase {
	return &JobUseCase{pipeline: newPipeline(uow, sink, opts...)}
}

func (u *JobUseCase) GetJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, error) {
	id, err := requireID(entities.EntityTypeJob, id)
	if err != nil {
		return entities.Job{}, err
	}
	var out *entities.Job
	_, err = u.run(ctx, tenant, "get-job", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		out, err = tx.Jobs().Get(ctx, id)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	return *out, nil
}

func (u *JobUseCase) StartJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error) {
	return u.transition(ctx, tenant, id, entities.JobStatusInProgress)
}

func (u *JobUseCase) CompleteJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error) {
	return u.transition(ctx, tenant, id, entities.JobStatusCompleted)
}

func (u *JobUseCase) CancelJob(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error) {
	return u.transition(ctx, tenant, id, entities.JobStatusCancelled)
}

func (u *JobUseCase) transition(ctx context.Context, tenant entities.Tenant, id string, to entities.JobStatus) (entities.Job, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeJob, id)
	if err != nil {
		return entities.Job{}, nil, err
	}
	now := u.now()
	var out *entities.Job
	events, err := u.run(ctx, tenant, "job-"+string(to), func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		job, err := tx.Jobs().Get(ctx, id)
		if err != nil {
			return err
		}
		change, err := statemachine.Apply(statemachine.JobSubject{Job: job}, string(to), now)
		if err != nil {
			return err
		}
		ch.add(change)
		out = job
		return tx.Jobs().Save(ctx, job)
	})
	if err != nil {
		return entities.Job{}, nil, err
	}
	return *out, events, nil
}

// mutate loads the job, applies edit and saves it. edit runs with the job's
// UpdatedAtUtc already set to now.
func (u *JobUseCase) mutate(ctx context.Context, tenant entities.Tenant, jobID, op string, edit func(job *entities.Job, now time.Time) error) (entities.Job, error) {
	jobID, err := requireID(entities.EntityTypeJob, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	now := u.now()
	var out *entities.Job
	_, err = u.run(ctx, tenant, op, func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		job, err := tx.Jobs().Get(ctx, jobID)
		if err != nil {
			return err
		}
		if err := edit(job, now); err != nil {
			return err
		}
		job.UpdatedAtUtc = now
		out = job
		return tx.Jobs().Save(ctx, job)
	})
	if err != nil {
		return entities.Job{}, err
	}
	return *out, nil
}

func (u *JobUseCase) AddMilestone(ctx context.Context, tenant entities.Tenant, jobID string, in MilestoneInput) (entities.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Job{}, apperr.Validation("milestone_title_required", "milestone title is required")
	}
	return u.mutate(ctx, tenant, jobID, "add-milestone", func(job *entities.Job, _ time.Time) error {
		if err := milestonesEditable(job); err != nil {
			return err
		}
		order := nextSortOrder(job.Milestones)
		if in.SortOrder != nil {
			order = *in.SortOrder
		}
		job.Milestones = append(job.Milestones, entities.JobMilestone{
			ID:            u.newID(),
			Title:         title,
			Notes:         strings.TrimSpace(in.Notes),
			OccurredAtUtc: utcPtr(in.OccurredAtUtc),
			SortOrder:     order,
			Status:        entities.MilestoneStatusPending,
		})
		sortMilestones(job.Milestones)
		return nil
	})
}

func (u *JobUseCase) UpdateMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string, in MilestoneInput) (entities.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Job{}, apperr.Validation("milestone_title_required", "milestone title is required")
	}
	return u.mutate(ctx, tenant, jobID, "update-milestone", func(job *entities.Job, _ time.Time) error {
		if err := milestonesEditable(job); err != nil {
			return err
		}
		i := job.MilestoneIndex(milestoneID)
		if i < 0 {
			return apperr.NotFound(entityMilestone, milestoneID)
		}
		m := &job.Milestones[i]
		m.Title = title
		m.Notes = strings.TrimSpace(in.Notes)
		m.OccurredAtUtc = utcPtr(in.OccurredAtUtc)
		if in.SortOrder != nil {
			m.SortOrder = *in.SortOrder
		}
		sortMilestones(job.Milestones)
		return nil
	})
}

func (u *JobUseCase) DeleteMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string) (entities.Job, error) {
	return u.mutate(ctx, tenant, jobID, "delete-milestone", func(job *entities.Job, _ time.Time) error {
		if err := milestonesEditable(job); err != nil {
			return err
		}
		i := job.MilestoneIndex(milestoneID)
		if i < 0 {
			return apperr.NotFound(entityMilestone, milestoneID)
		}
		job.Milestones = append(job.Milestones[:i], job.Milestones[i+1:]...)
		return nil
	})
}

// ReorderMilestones assigns sortOrder = position in milestoneIDs, which must
// list every milestone of the job exactly once.
func (u *JobUseCase) ReorderMilestones(ctx context.Context, tenant entities.Tenant, jobID string, milestoneIDs []string) (entities.Job, error) {
	return u.mutate(ctx, tenant, jobID, "reorder-milestones", func(job *entities.Job, _ time.Time) error {
		if err := milestonesEditable(job); err != nil {
			return err
		}
		if len(milestoneIDs) != len(job.Milestones) {
			return apperr.Validation("milestone_order_complete", "expected %d milestone ids, got %d", len(job.Milestones), len(milestoneIDs))
		}
		seen := make(map[string]struct{}, len(milestoneIDs))
		for pos, id := range milestoneIDs {
			if _, dup := seen[id]; dup {
				return apperr.Validation("milestone_order_unique", "milestone %s listed twice", id)
			}
			seen[id] = struct{}{}
			i := job.MilestoneIndex(id)
			if i < 0 {
				return apperr.NotFound(entityMilestone, id)
			}
			job.Milestones[i].SortOrder = pos
		}
		sortMilestones(job.Milestones)
		return nil
	})
}

// CompleteMilestone moves a Pending milestone to Completed.
func (u *JobUseCase) CompleteMilestone(ctx context.Context, tenant entities.Tenant, jobID, milestoneID string) (entities.Job, error) {
	return u.mutate(ctx, tenant, jobID, "complete-milestone", func(job *entities.Job, now time.Time) error {
		if err := milestonesEditable(job); err != nil {
			return err
		}
		i := job.MilestoneIndex(milestoneID)
		if i < 0 {
			return apperr.NotFound(entityMilestone, milestoneID)
		}
		m := &job.Milestones[i]
		if m.Status != entities.MilestoneStatusPending {
			return apperr.TransitionConflict(entityMilestone, m.ID, string(m.Status), string(entities.MilestoneStatusCompleted))
		}
		m.Status = entities.MilestoneStatusCompleted
		m.CompletedAtUtc = stampUTC(now)
		return nil
	})
}

func (u *JobUseCase) AddExpense(ctx context.Context, tenant entities.Tenant, jobID string, in ExpenseInput) (entities.Job, error) {
	if err := validateExpense(in); err != nil {
		return entities.Job{}, err
	}
	return u.mutate(ctx, tenant, jobID, "add-expense", func(job *entities.Job, now time.Time) error {
		exp := entities.JobExpense{ID: u.newID(), CreatedAtUtc: now}
		applyExpenseInput(&exp, in, now)
		job.Expenses = append(job.Expenses, exp)
		return nil
	})
}

func (u *JobUseCase) UpdateExpense(ctx context.Context, tenant entities.Tenant, jobID, expenseID string, in ExpenseInput) (entities.Job, error) {
	if err := validateExpense(in); err != nil {
		return entities.Job{}, err
	}
	return u.mutate(ctx, tenant, jobID, "update-expense", func(job *entities.Job, now time.Time) error {
		i, err := editableExpense(job, expenseID)
		if err != nil {
			return err
		}
		applyExpenseInput(&job.Expenses[i], in, now)
		return nil
	})
}

func (u *JobUseCase) DeleteExpense(ctx context.Context, tenant entities.Tenant, jobID, expenseID string) (entities.Job, error) {
	return u.mutate(ctx, tenant, jobID, "delete-expense", func(job *entities.Job, _ time.Time) error {
		i, err := editableExpense(job, expenseID)
		if err != nil {
			return err
		}
		job.Expenses = append(job.Expenses[:i], job.Expenses[i+1:]...)
		return nil
	})
}

func milestonesEditable(job *entities.Job) error {
	if job.IsTerminal() {
		return apperr.Conflict(string(entities.EntityTypeJob), job.ID, "milestones of a %s job cannot change", job.Status)
	}
	return nil
}

func editableExpense(job *entities.Job, expenseID string) (int, error) {
	i := job.ExpenseIndex(expenseID)
	if i < 0 {
		return -1, apperr.NotFound(entityExpense, expenseID)
	}
	if job.IsTerminal() {
		return -1, apperr.Conflict(string(entities.EntityTypeJob), job.ID, "expenses of a %s job are append-only", job.Status)
	}
	return i, nil
}

func validateExpense(in ExpenseInput) error {
	if strings.TrimSpace(in.Vendor) == "" {
		return apperr.Validation("vendor_required", "expense vendor is required")
	}
	if in.Amount.IsNegative() {
		return apperr.Validation("amount_non_negative", "expense amount must not be negative")
	}
	return nil
}

func applyExpenseInput(exp *entities.JobExpense, in ExpenseInput, now time.Time) {
	exp.Vendor = strings.TrimSpace(in.Vendor)
	exp.Category = strings.TrimSpace(in.Category)
	exp.Amount = ledger.RoundMoney(in.Amount)
	exp.ReceiptURL = strings.TrimSpace(in.ReceiptURL)
	exp.SpentAtUtc = in.SpentAtUtc.UTC()
	if in.SpentAtUtc.IsZero() {
		exp.SpentAtUtc = now
	}
}

func nextSortOrder(ms []entities.JobMilestone) int {
	next := 0
	for _, m := range ms {
		if m.SortOrder >= next {
			next = m.SortOrder + 1
		}
	}
	return next
}

func sortMilestones(ms []entities.JobMilestone) {
	sort.SliceStable(ms, func(a, b int) bool { return ms[a].SortOrder < ms[b].SortOrder })
}
