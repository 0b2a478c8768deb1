package statemachine

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

// LeadMachine: New→Lost, New→Converted, Lost→New.
var LeadMachine = New(
	entities.EntityTypeLead,
	func(l *entities.Lead) string { return l.ID },
	func(l *entities.Lead) entities.LeadStatus { return l.Status },
	applyLead,
).
	Permit(entities.LeadStatusNew, entities.LeadStatusLost).
	Permit(entities.LeadStatusNew, entities.LeadStatusConverted).
	Permit(entities.LeadStatusLost, entities.LeadStatusNew)

// EstimateMachine: Draft→Sent, Sent→Accepted, Sent→Rejected, Draft→Rejected.
var EstimateMachine = New(
	entities.EntityTypeEstimate,
	func(e *entities.Estimate) string { return e.ID },
	func(e *entities.Estimate) entities.EstimateStatus { return e.Status },
	applyEstimate,
).
	Permit(entities.EstimateStatusDraft, entities.EstimateStatusSent).
	Permit(entities.EstimateStatusSent, entities.EstimateStatusAccepted).
	Permit(entities.EstimateStatusSent, entities.EstimateStatusRejected).
	Permit(entities.EstimateStatusDraft, entities.EstimateStatusRejected)

// JobMachine: Scheduled→InProgress, InProgress→Completed, InProgress→Cancelled, Scheduled→Cancelled.
var JobMachine = New(
	entities.EntityTypeJob,
	func(j *entities.Job) string { return j.ID },
	func(j *entities.Job) entities.JobStatus { return j.Status },
	applyJob,
).
	Permit(entities.JobStatusScheduled, entities.JobStatusInProgress).
	Permit(entities.JobStatusInProgress, entities.JobStatusCompleted).
	Permit(entities.JobStatusInProgress, entities.JobStatusCancelled).
	Permit(entities.JobStatusScheduled, entities.JobStatusCancelled)

// InvoiceMachine: Draft→Issued, Issued→Paid, Overdue→Paid and the sweep's
// Issued→Overdue. Paid→Paid is an idempotent success.
var InvoiceMachine = New(
	entities.EntityTypeInvoice,
	func(i *entities.Invoice) string { return i.ID },
	func(i *entities.Invoice) entities.InvoiceStatus { return i.Status },
	applyInvoice,
).
	Permit(entities.InvoiceStatusDraft, entities.InvoiceStatusIssued).
	Permit(entities.InvoiceStatusIssued, entities.InvoiceStatusPaid).
	Permit(entities.InvoiceStatusOverdue, entities.InvoiceStatusPaid).
	Permit(entities.InvoiceStatusIssued, entities.InvoiceStatusOverdue).
	Idempotent(entities.InvoiceStatusPaid)

func applyLead(l *entities.Lead, from, to entities.LeadStatus, now time.Time) {
	l.Status = to
	switch to {
	case entities.LeadStatusLost:
		l.LostAtUtc = stamp(now)
	case entities.LeadStatusNew:
		if from == entities.LeadStatusLost {
			l.LostAtUtc = nil
		}
	}
	l.UpdatedAtUtc = now
}

func applyEstimate(e *entities.Estimate, _, to entities.EstimateStatus, now time.Time) {
	e.Status = to
	switch to {
	case entities.EstimateStatusSent:
		e.SentAtUtc = stamp(now)
	case entities.EstimateStatusAccepted:
		e.AcceptedAtUtc = stamp(now)
	case entities.EstimateStatusRejected:
		e.RejectedAtUtc = stamp(now)
	}
	e.UpdatedAtUtc = now
}

func applyJob(j *entities.Job, _, to entities.JobStatus, now time.Time) {
	j.Status = to
	switch to {
	case entities.JobStatusInProgress:
		j.StartedAtUtc = stamp(now)
	case entities.JobStatusCompleted:
		j.CompletedAtUtc = stamp(now)
	case entities.JobStatusCancelled:
		j.CancelledAtUtc = stamp(now)
	}
	j.UpdatedAtUtc = now
}

func applyInvoice(i *entities.Invoice, _, to entities.InvoiceStatus, now time.Time) {
	i.Status = to
	switch to {
	case entities.InvoiceStatusIssued:
		i.IssuedAtUtc = stamp(now)
		if i.DueAtUtc == nil {
			i.DueAtUtc = stamp(now.Add(entities.DefaultInvoiceTerm))
		}
	case entities.InvoiceStatusPaid:
		i.PaidAtUtc = stamp(now)
	}
	i.UpdatedAtUtc = now
}

func stamp(t time.Time) *time.Time {
	t = t.UTC()
	return &t
}
