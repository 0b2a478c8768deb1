package request

import (
	"time"

	"contractor_pipeline/internal/usecase"
)

type EstimateRequest struct {
	LeadID      string            `json:"lead_id" binding:"required"`
	Description string            `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
}

func (r EstimateRequest) ToInput() usecase.EstimateInput {
	return usecase.EstimateInput{
		LeadID:      r.LeadID,
		Description: r.Description,
		LineItems:   toLineInputs(r.LineItems),
	}
}

// UpdateEstimateRequest edits a draft; omitted fields are kept.
type UpdateEstimateRequest struct {
	Description *string           `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
}

func (r UpdateEstimateRequest) ToInput() usecase.UpdateEstimateInput {
	return usecase.UpdateEstimateInput{
		Description: r.Description,
		LineItems:   toLineInputs(r.LineItems),
	}
}

type MilestoneTemplateRequest struct {
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
	OccurredAtUtc *time.Time `json:"occurred_at_utc"`
}

// AcceptEstimateRequest schedules the job created when the estimate is accepted.
type AcceptEstimateRequest struct {
	Title             string                     `json:"title"`
	StartAtUtc        time.Time                  `json:"start_at_utc"`
	EstimatedEndAtUtc time.Time                  `json:"estimated_end_at_utc"`
	Milestones        []MilestoneTemplateRequest `json:"milestones"`
}

func (r AcceptEstimateRequest) ToInput() usecase.AcceptEstimateInput {
	in := usecase.AcceptEstimateInput{
		Title:             r.Title,
		StartAtUtc:        r.StartAtUtc,
		EstimatedEndAtUtc: r.EstimatedEndAtUtc,
	}
	for _, m := range r.Milestones {
		in.Milestones = append(in.Milestones, usecase.MilestoneTemplate{
			Title:         m.Title,
			Notes:         m.Notes,
			OccurredAtUtc: m.OccurredAtUtc,
		})
	}
	return in
}
