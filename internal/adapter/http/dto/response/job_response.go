package response

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

type MilestoneResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Notes          string     `json:"notes,omitempty"`
	OccurredAtUtc  *time.Time `json:"occurred_at_utc,omitempty"`
	SortOrder      int        `json:"sort_order"`
	Status         string     `json:"status"`
	CompletedAtUtc *time.Time `json:"completed_at_utc,omitempty"`
}

type ExpenseResponse struct {
	ID           string    `json:"id"`
	Vendor       string    `json:"vendor"`
	Category     string    `json:"category,omitempty"`
	Amount       string    `json:"amount"`
	SpentAtUtc   time.Time `json:"spent_at_utc"`
	ReceiptURL   string    `json:"receipt_url,omitempty"`
	CreatedAtUtc time.Time `json:"created_at_utc"`
}

type JobResponse struct {
	ID                string              `json:"id"`
	OrganizationID    string              `json:"organization_id"`
	LeadID            string              `json:"lead_id"`
	EstimateID        string              `json:"estimate_id,omitempty"`
	Title             string              `json:"title,omitempty"`
	StartAtUtc        time.Time           `json:"start_at_utc"`
	EstimatedEndAtUtc time.Time           `json:"estimated_end_at_utc"`
	Milestones        []MilestoneResponse `json:"milestones"`
	Expenses          []ExpenseResponse   `json:"expenses"`
	TotalExpenses     string              `json:"total_expenses"`
	Status            string              `json:"status"`
	StartedAtUtc      *time.Time          `json:"started_at_utc,omitempty"`
	CompletedAtUtc    *time.Time          `json:"completed_at_utc,omitempty"`
	CancelledAtUtc    *time.Time          `json:"cancelled_at_utc,omitempty"`
	CreatedAtUtc      time.Time           `json:"created_at_utc"`
	UpdatedAtUtc      time.Time           `json:"updated_at_utc"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:                j.ID,
		OrganizationID:    j.OrganizationID,
		LeadID:            j.LeadID,
		EstimateID:        j.EstimateID,
		Title:             j.Title,
		StartAtUtc:        j.StartAtUtc,
		EstimatedEndAtUtc: j.EstimatedEndAtUtc,
		Milestones:        make([]MilestoneResponse, 0, len(j.Milestones)),
		Expenses:          make([]ExpenseResponse, 0, len(j.Expenses)),
		TotalExpenses:     j.TotalExpenses().StringFixed(2),
		Status:            string(j.Status),
		StartedAtUtc:      j.StartedAtUtc,
		CompletedAtUtc:    j.CompletedAtUtc,
		CancelledAtUtc:    j.CancelledAtUtc,
		CreatedAtUtc:      j.CreatedAtUtc,
		UpdatedAtUtc:      j.UpdatedAtUtc,
	}
	for _, m := range j.Milestones {
		res.Milestones = append(res.Milestones, MilestoneResponse{
			ID:             m.ID,
			Title:          m.Title,
			Notes:          m.Notes,
			OccurredAtUtc:  m.OccurredAtUtc,
			SortOrder:      m.SortOrder,
			Status:         string(m.Status),
			CompletedAtUtc: m.CompletedAtUtc,
		})
	}
	for _, e := range j.Expenses {
		res.Expenses = append(res.Expenses, ExpenseResponse{
			ID:           e.ID,
			Vendor:       e.Vendor,
			Category:     e.Category,
			Amount:       e.Amount.StringFixed(2),
			SpentAtUtc:   e.SpentAtUtc,
			ReceiptURL:   e.ReceiptURL,
			CreatedAtUtc: e.CreatedAtUtc,
		})
	}
	return res
}
