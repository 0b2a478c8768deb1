package response

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

type InvoiceResponse struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organization_id"`
	JobID          string             `json:"job_id"`
	Notes          string             `json:"notes,omitempty"`
	LineItems      []LineItemResponse `json:"line_items"`
	Subtotal       string             `json:"subtotal"`
	TaxTotal       string             `json:"tax_total"`
	Amount         string             `json:"amount"`
	Status         string             `json:"status"`
	IssuedAtUtc    *time.Time         `json:"issued_at_utc,omitempty"`
	DueAtUtc       *time.Time         `json:"due_at_utc,omitempty"`
	PaidAtUtc      *time.Time         `json:"paid_at_utc,omitempty"`
	CreatedAtUtc   time.Time          `json:"created_at_utc"`
	UpdatedAtUtc   time.Time          `json:"updated_at_utc"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		JobID:          i.JobID,
		Notes:          i.Notes,
		LineItems:      fromLineItems(i.LineItems),
		Subtotal:       i.Subtotal.StringFixed(2),
		TaxTotal:       i.TaxTotal.StringFixed(2),
		Amount:         i.Amount.StringFixed(2),
		Status:         string(i.Status),
		IssuedAtUtc:    i.IssuedAtUtc,
		DueAtUtc:       i.DueAtUtc,
		PaidAtUtc:      i.PaidAtUtc,
		CreatedAtUtc:   i.CreatedAtUtc,
		UpdatedAtUtc:   i.UpdatedAtUtc,
	}
}

type InvoicePaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	InvoiceID         string    `json:"invoice_id"`
	Amount            string    `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:         p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount.StringFixed(2),
		Date:              p.Date,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayloadRaw:      string(p.ProviderPayloadRaw),
		MPPayload:         p.ProviderPayload,
	}
}

func FromInvoicePayments(ps []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}

// CollectPaymentResponse is the recorded payment and the invoice after it.
type CollectPaymentResponse struct {
	Payment InvoicePaymentResponse `json:"payment"`
	Invoice InvoiceResponse        `json:"invoice"`
	Events  []EventResponse        `json:"events"`
}
