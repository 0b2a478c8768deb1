package request

import (
	"contractor_pipeline/internal/domain/taxes"
	"contractor_pipeline/internal/usecase"

	"github.com/shopspring/decimal"
)

// TaxLineRequest is one named rate in percentage points ("7.5" = 7.5%).
type TaxLineRequest struct {
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

// LeadRequest creates or replaces the editable fields of a lead.
//
// Omitting tax_lines keeps the current ones on update; an empty array clears them.
type LeadRequest struct {
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	Source         string           `json:"source"`
	Notes          string           `json:"notes"`
	CompanyID      string           `json:"company_id"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	TaxLines       []TaxLineRequest `json:"tax_lines"`
}

func (r LeadRequest) ToInput() usecase.LeadInput {
	return usecase.LeadInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Source:         r.Source,
		Notes:          r.Notes,
		CompanyID:      r.CompanyID,
		EstimatedValue: r.EstimatedValue,
		TaxLines:       toTaxInputs(r.TaxLines),
	}
}

// LeadStatusRequest moves a lead through its state machine.
type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toTaxInputs(lines []TaxLineRequest) []taxes.Input {
	if lines == nil {
		return nil
	}
	out := make([]taxes.Input, 0, len(lines))
	for _, l := range lines {
		out = append(out, taxes.Input{Label: l.Label, Rate: l.Rate})
	}
	return out
}
