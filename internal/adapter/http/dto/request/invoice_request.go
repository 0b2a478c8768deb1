package request

import (
	"encoding/json"
	"time"

	"contractor_pipeline/internal/usecase"
)

type InvoiceRequest struct {
	JobID     string            `json:"job_id" binding:"required"`
	Notes     string            `json:"notes"`
	DueAtUtc  *time.Time        `json:"due_at_utc"`
	LineItems []LineItemRequest `json:"line_items"`
}

func (r InvoiceRequest) ToInput() usecase.InvoiceInput {
	return usecase.InvoiceInput{
		JobID:     r.JobID,
		Notes:     r.Notes,
		DueAtUtc:  r.DueAtUtc,
		LineItems: toLineInputs(r.LineItems),
	}
}

// UpdateInvoiceRequest edits a draft; omitted fields are kept.
type UpdateInvoiceRequest struct {
	Notes     *string           `json:"notes"`
	DueAtUtc  *time.Time        `json:"due_at_utc"`
	LineItems []LineItemRequest `json:"line_items"`
}

func (r UpdateInvoiceRequest) ToInput() usecase.UpdateInvoiceInput {
	return usecase.UpdateInvoiceInput{
		Notes:     r.Notes,
		DueAtUtc:  r.DueAtUtc,
		LineItems: toLineInputs(r.LineItems),
	}
}

// IssueInvoiceRequest optionally sets the due date; 30 days from issue otherwise.
type IssueInvoiceRequest struct {
	DueAtUtc *time.Time `json:"due_at_utc"`
}

// InvoicePaymentCreateRequest is the payload of the collect route.
//
// `mp_payload` is passed as-is (raw JSON) to support varying Mercado Pago schemas.
type InvoicePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
