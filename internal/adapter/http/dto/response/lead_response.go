package response

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

type LeadResponse struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organization_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
	Source         string            `json:"source,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CompanyID      string            `json:"company_id,omitempty"`
	EstimatedValue *string           `json:"estimated_value,omitempty"`
	TaxLines       []TaxLineResponse `json:"tax_lines"`
	Status         string            `json:"status"`
	LostAtUtc      *time.Time        `json:"lost_at_utc,omitempty"`
	CreatedAtUtc   time.Time         `json:"created_at_utc"`
	UpdatedAtUtc   time.Time         `json:"updated_at_utc"`
}

func FromLead(l entities.Lead) LeadResponse {
	res := LeadResponse{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Address:        l.Address,
		Source:         l.Source,
		Notes:          l.Notes,
		CompanyID:      l.CompanyID,
		TaxLines:       fromTaxLines(l.TaxLines),
		Status:         string(l.Status),
		LostAtUtc:      l.LostAtUtc,
		CreatedAtUtc:   l.CreatedAtUtc,
		UpdatedAtUtc:   l.UpdatedAtUtc,
	}
	if l.EstimatedValue != nil {
		v := l.EstimatedValue.StringFixed(2)
		res.EstimatedValue = &v
	}
	return res
}

type CompanyResponse struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organization_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
	City           string            `json:"city,omitempty"`
	State          string            `json:"state,omitempty"`
	PostalCode     string            `json:"postal_code,omitempty"`
	TaxID          string            `json:"tax_id,omitempty"`
	TaxLines       []TaxLineResponse `json:"tax_lines"`
	CreatedAtUtc   time.Time         `json:"created_at_utc"`
	UpdatedAtUtc   time.Time         `json:"updated_at_utc"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		PostalCode:     c.PostalCode,
		TaxID:          c.TaxID,
		TaxLines:       fromTaxLines(c.TaxLines),
		CreatedAtUtc:   c.CreatedAtUtc,
		UpdatedAtUtc:   c.UpdatedAtUtc,
	}
}
