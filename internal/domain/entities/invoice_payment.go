package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment provider outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment records one collection attempt against an invoice.
//
// ProviderPayloadRaw keeps the provider response body for traceability;
// ProviderPayload is its parsed form, kept for querying/debugging.
type InvoicePayment struct {
	ID                string          `json:"id"`
	OrganizationID    string          `json:"organization_id"`
	InvoiceID         string          `json:"invoice_id"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func (p *InvoicePayment) Clone() *InvoicePayment {
	if p == nil {
		return nil
	}
	c := *p
	c.ProviderPayloadRaw = append(json.RawMessage(nil), p.ProviderPayloadRaw...)
	if p.ProviderPayload != nil {
		c.ProviderPayload = make(map[string]interface{}, len(p.ProviderPayload))
		for k, v := range p.ProviderPayload {
			c.ProviderPayload[k] = v
		}
	}
	return &c
}
