package request

import (
	"time"

	"contractor_pipeline/internal/usecase"

	"github.com/shopspring/decimal"
)

type MilestoneRequest struct {
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
	OccurredAtUtc *time.Time `json:"occurred_at_utc"`
	SortOrder     *int       `json:"sort_order"`
}

func (r MilestoneRequest) ToInput() usecase.MilestoneInput {
	return usecase.MilestoneInput{
		Title:         r.Title,
		Notes:         r.Notes,
		OccurredAtUtc: r.OccurredAtUtc,
		SortOrder:     r.SortOrder,
	}
}

type ReorderMilestonesRequest struct {
	MilestoneIDs []string `json:"milestone_ids" binding:"required"`
}

// ExpenseRequest records a cost; spent_at_utc defaults to now.
type ExpenseRequest struct {
	Vendor     string          `json:"vendor"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	SpentAtUtc *time.Time      `json:"spent_at_utc"`
	ReceiptURL string          `json:"receipt_url"`
}

func (r ExpenseRequest) ToInput() usecase.ExpenseInput {
	in := usecase.ExpenseInput{
		Vendor:     r.Vendor,
		Category:   r.Category,
		Amount:     r.Amount,
		ReceiptURL: r.ReceiptURL,
	}
	if r.SpentAtUtc != nil {
		in.SpentAtUtc = *r.SpentAtUtc
	}
	return in
}
