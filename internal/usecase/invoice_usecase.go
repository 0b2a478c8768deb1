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

type InvoiceInput struct {
	JobID     string
	Notes     string
	DueAtUtc  *time.Time
	LineItems []ledger.LineInput
}

// UpdateInvoiceInput edits a draft. Nil fields are left untouched.
type UpdateInvoiceInput struct {
	Notes     *string
	DueAtUtc  *time.Time
	LineItems []ledger.LineInput
}

// IInvoiceUseCase exposes the billing side of the pipeline.
//
// MarkInvoicePaid is idempotent: paying a Paid invoice succeeds, keeps the
// first PaidAtUtc and emits no event.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, tenant entities.Tenant, in InvoiceInput) (entities.Invoice, error)
	GetInvoice(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, error)
	UpdateInvoice(ctx context.Context, tenant entities.Tenant, id string, in UpdateInvoiceInput) (entities.Invoice, error)
	IssueInvoice(ctx context.Context, tenant entities.Tenant, id string, dueAt *time.Time) (entities.Invoice, []entities.StateTransitionEvent, error)
	MarkInvoicePaid(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, []entities.StateTransitionEvent, error)
	MarkInvoiceOverdue(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, []entities.StateTransitionEvent, error)
}

type InvoiceUseCase struct {
	pipeline
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, opts ...Option) *InvoiceUseCase {
	return &InvoiceUseCase{pipeline: newPipeline(uow, sink, opts...)}
}

// CreateInvoice bills a job that exists and is not Cancelled; anything else is
// a Conflict.
func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, tenant entities.Tenant, in InvoiceInput) (entities.Invoice, error) {
	jobID, err := requireID(entities.EntityTypeJob, in.JobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	lines, err := ledger.Build(in.LineItems, ledger.RejectBlank, u.newID)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := u.now()
	inv := &entities.Invoice{
		ID:           u.newID(),
		JobID:        jobID,
		Notes:        strings.TrimSpace(in.Notes),
		DueAtUtc:     utcPtr(in.DueAtUtc),
		Status:       entities.InvoiceStatusDraft,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}
	setInvoiceLines(inv, lines)

	_, err = u.run(ctx, tenant, "create-invoice", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		if err := requireBillableJob(ctx, tx, inv.ID, jobID); err != nil {
			return err
		}
		return tx.Invoices().Save(ctx, inv)
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return *inv, nil
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, error) {
	id, err := requireID(entities.EntityTypeInvoice, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	var out *entities.Invoice
	_, err = u.run(ctx, tenant, "get-invoice", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		out, err = tx.Invoices().Get(ctx, id)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return *out, nil
}

func (u *InvoiceUseCase) UpdateInvoice(ctx context.Context, tenant entities.Tenant, id string, in UpdateInvoiceInput) (entities.Invoice, error) {
	id, err := requireID(entities.EntityTypeInvoice, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	var lines []entities.LineItem
	if in.LineItems != nil {
		if lines, err = ledger.Build(in.LineItems, ledger.RejectBlank, u.newID); err != nil {
			return entities.Invoice{}, err
		}
	}

	now := u.now()
	var out *entities.Invoice
	_, err = u.run(ctx, tenant, "update-invoice", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		inv, err := tx.Invoices().Get(ctx, id)
		if err != nil {
			return err
		}
		if inv.Status != entities.InvoiceStatusDraft {
			return apperr.Conflict(string(entities.EntityTypeInvoice), id, "only draft invoices can be edited (status %s)", inv.Status)
		}
		if in.Notes != nil {
			inv.Notes = strings.TrimSpace(*in.Notes)
		}
		if in.DueAtUtc != nil {
			inv.DueAtUtc = utcPtr(in.DueAtUtc)
		}
		if in.LineItems != nil {
			setInvoiceLines(inv, lines)
		}
		inv.UpdatedAtUtc = now
		out = inv
		return tx.Invoices().Save(ctx, inv)
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return *out, nil
}

// IssueInvoice moves a Draft invoice to Issued. A nil dueAt keeps the draft's
// due date, or defaults it to issue time plus entities.DefaultInvoiceTerm.
func (u *InvoiceUseCase) IssueInvoice(ctx context.Context, tenant entities.Tenant, id string, dueAt *time.Time) (entities.Invoice, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeInvoice, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	now := u.now()
	var out *entities.Invoice
	events, err := u.run(ctx, tenant, "issue-invoice", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		inv, err := tx.Invoices().Get(ctx, id)
		if err != nil {
			return err
		}
		if err := requireBillableJob(ctx, tx, inv.ID, inv.JobID); err != nil {
			return err
		}
		if dueAt != nil {
			inv.DueAtUtc = utcPtr(dueAt)
		}
		change, err := statemachine.Apply(statemachine.InvoiceSubject{Invoice: inv}, string(entities.InvoiceStatusIssued), now)
		if err != nil {
			return err
		}
		ch.add(change)
		out = inv
		return tx.Invoices().Save(ctx, inv)
	})
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	return *out, events, nil
}

func (u *InvoiceUseCase) MarkInvoicePaid(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeInvoice, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	now := u.now()
	var out *entities.Invoice
	events, err := u.run(ctx, tenant, "mark-invoice-paid", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		var err error
		out, err = markPaid(ctx, tx, id, now, ch)
		return err
	})
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	return *out, events, nil
}

// MarkInvoiceOverdue moves an Issued invoice whose due date has passed to
// Overdue. The sweep calls it for every candidate it finds.
func (u *InvoiceUseCase) MarkInvoiceOverdue(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, []entities.StateTransitionEvent, error) {
	id, err := requireID(entities.EntityTypeInvoice, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	now := u.now()
	var out *entities.Invoice
	events, err := u.run(ctx, tenant, "mark-invoice-overdue", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		inv, err := tx.Invoices().Get(ctx, id)
		if err != nil {
			return err
		}
		if inv.Status == entities.InvoiceStatusIssued && !inv.IsPastDue(now) {
			return apperr.Conflict(string(entities.EntityTypeInvoice), id, "invoice is not past due")
		}
		change, err := statemachine.Apply(statemachine.InvoiceSubject{Invoice: inv}, string(entities.InvoiceStatusOverdue), now)
		if err != nil {
			return err
		}
		ch.add(change)
		out = inv
		return tx.Invoices().Save(ctx, inv)
	})
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	return *out, events, nil
}

// markPaid applies Paid inside an open unit. An already Paid invoice is
// returned as is and nothing is staged.
func markPaid(ctx context.Context, tx interfaces.ITx, id string, now time.Time, ch *changes) (*entities.Invoice, error) {
	inv, err := tx.Invoices().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	change, err := statemachine.Apply(statemachine.InvoiceSubject{Invoice: inv}, string(entities.InvoiceStatusPaid), now)
	if err != nil {
		return nil, err
	}
	if !change.Changed {
		return inv, nil
	}
	ch.add(change)
	return inv, tx.Invoices().Save(ctx, inv)
}

func requireBillableJob(ctx context.Context, tx interfaces.ITx, invoiceID, jobID string) error {
	job, err := tx.Jobs().Get(ctx, jobID)
	if apperr.IsNotFound(err) {
		return apperr.Conflict(string(entities.EntityTypeInvoice), invoiceID, "job %s does not exist", jobID)
	}
	if err != nil {
		return err
	}
	if job.Status == entities.JobStatusCancelled {
		return apperr.Conflict(string(entities.EntityTypeInvoice), invoiceID, "job %s is cancelled", jobID)
	}
	return nil
}

func setInvoiceLines(inv *entities.Invoice, lines []entities.LineItem) {
	totals := ledger.Compute(lines)
	inv.LineItems = lines
	inv.Subtotal = totals.Subtotal
	inv.TaxTotal = totals.TaxTotal
	inv.Amount = totals.Total
}
