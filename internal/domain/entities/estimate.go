package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a quote sent to a lead.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
)

var EstimateStatuses = []EstimateStatus{
	EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted, EstimateStatusRejected,
}

// Estimate is a quote for a lead.
//
// Monetary representation:
//   - Subtotal, TaxTotal and Amount are derived from LineItems by the ledger and
//     recomputed whenever the lines change; they are never edited directly.
type Estimate struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	LeadID         string          `json:"lead_id"`
	JobID          string          `json:"job_id,omitempty"`
	Description    string          `json:"description,omitempty"`
	LineItems      []LineItem      `json:"line_items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	Amount         decimal.Decimal `json:"amount"`

	Status        EstimateStatus `json:"status"`
	SentAtUtc     *time.Time     `json:"sent_at_utc,omitempty"`
	AcceptedAtUtc *time.Time     `json:"accepted_at_utc,omitempty"`
	RejectedAtUtc *time.Time     `json:"rejected_at_utc,omitempty"`

	CreatedAtUtc time.Time `json:"created_at_utc"`
	UpdatedAtUtc time.Time `json:"updated_at_utc"`
	Version      int64     `json:"version"`
}

// IsTerminal reports whether the estimate no longer accepts line changes.
func (e *Estimate) IsTerminal() bool {
	return e.Status == EstimateStatusAccepted || e.Status == EstimateStatusRejected
}

func (e *Estimate) Clone() *Estimate {
	if e == nil {
		return nil
	}
	c := *e
	c.LineItems = append([]LineItem(nil), e.LineItems...)
	c.SentAtUtc = cloneTime(e.SentAtUtc)
	c.AcceptedAtUtc = cloneTime(e.AcceptedAtUtc)
	c.RejectedAtUtc = cloneTime(e.RejectedAtUtc)
	return &c
}
