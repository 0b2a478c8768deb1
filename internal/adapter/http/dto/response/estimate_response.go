package response

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

type EstimateResponse struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organization_id"`
	LeadID         string             `json:"lead_id"`
	JobID          string             `json:"job_id,omitempty"`
	Description    string             `json:"description,omitempty"`
	LineItems      []LineItemResponse `json:"line_items"`
	Subtotal       string             `json:"subtotal"`
	TaxTotal       string             `json:"tax_total"`
	Amount         string             `json:"amount"`
	Status         string             `json:"status"`
	SentAtUtc      *time.Time         `json:"sent_at_utc,omitempty"`
	AcceptedAtUtc  *time.Time         `json:"accepted_at_utc,omitempty"`
	RejectedAtUtc  *time.Time         `json:"rejected_at_utc,omitempty"`
	CreatedAtUtc   time.Time          `json:"created_at_utc"`
	UpdatedAtUtc   time.Time          `json:"updated_at_utc"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		LeadID:         e.LeadID,
		JobID:          e.JobID,
		Description:    e.Description,
		LineItems:      fromLineItems(e.LineItems),
		Subtotal:       e.Subtotal.StringFixed(2),
		TaxTotal:       e.TaxTotal.StringFixed(2),
		Amount:         e.Amount.StringFixed(2),
		Status:         string(e.Status),
		SentAtUtc:      e.SentAtUtc,
		AcceptedAtUtc:  e.AcceptedAtUtc,
		RejectedAtUtc:  e.RejectedAtUtc,
		CreatedAtUtc:   e.CreatedAtUtc,
		UpdatedAtUtc:   e.UpdatedAtUtc,
	}
}

// AcceptEstimateResponse is the estimate and the job created with it.
type AcceptEstimateResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Job      JobResponse      `json:"job"`
	Events   []EventResponse  `json:"events"`
}

func FromAcceptEstimate(est entities.Estimate, job entities.Job, events []entities.StateTransitionEvent) AcceptEstimateResponse {
	return AcceptEstimateResponse{
		Estimate: FromEstimate(est),
		Job:      FromJob(job),
		Events:   FromEvents(events),
	}
}
