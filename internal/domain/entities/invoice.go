package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of a bill for a job.
//
// Overdue is entered only through the periodic sweep; reads never derive it.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusIssued  InvoiceStatus = "issued"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

var InvoiceStatuses = []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusOverdue}

// DefaultInvoiceTerm is applied when an invoice is issued without a due date.
const DefaultInvoiceTerm = 30 * 24 * time.Hour

type Invoice struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	JobID          string          `json:"job_id"`
	Notes          string          `json:"notes,omitempty"`
	LineItems      []LineItem      `json:"line_items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	Amount         decimal.Decimal `json:"amount"`

	Status      InvoiceStatus `json:"status"`
	IssuedAtUtc *time.Time    `json:"issued_at_utc,omitempty"`
	DueAtUtc    *time.Time    `json:"due_at_utc,omitempty"`
	PaidAtUtc   *time.Time    `json:"paid_at_utc,omitempty"`

	CreatedAtUtc time.Time `json:"created_at_utc"`
	UpdatedAtUtc time.Time `json:"updated_at_utc"`
	Version      int64     `json:"version"`
}

// IsPastDue reports whether an Issued invoice's due date is before now.
func (i *Invoice) IsPastDue(now time.Time) bool {
	return i.Status == InvoiceStatusIssued && i.DueAtUtc != nil && i.DueAtUtc.Before(now)
}

func (i *Invoice) Clone() *Invoice {
	if i == nil {
		return nil
	}
	c := *i
	c.LineItems = append([]LineItem(nil), i.LineItems...)
	c.IssuedAtUtc = cloneTime(i.IssuedAtUtc)
	c.DueAtUtc = cloneTime(i.DueAtUtc)
	c.PaidAtUtc = cloneTime(i.PaidAtUtc)
	return &c
}
