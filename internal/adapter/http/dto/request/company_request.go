package request

import "contractor_pipeline/internal/usecase"

type CompanyRequest struct {
	Name       string           `json:"name" binding:"required"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	PostalCode string           `json:"postal_code"`
	TaxID      string           `json:"tax_id"`
	TaxLines   []TaxLineRequest `json:"tax_lines"`
}

func (r CompanyRequest) ToInput() usecase.CompanyInput {
	return usecase.CompanyInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		TaxID:      r.TaxID,
		TaxLines:   toTaxInputs(r.TaxLines),
	}
}
