package entities

import "time"

// Company groups leads under a billing party and carries its own tax lines.
// It has no lifecycle beyond soft deletion.
type Company struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	TaxID          string    `json:"tax_id,omitempty"`
	TaxLines       []TaxLine `json:"tax_lines,omitempty"`

	IsDeleted    bool       `json:"is_deleted"`
	DeletedAtUtc *time.Time `json:"deleted_at_utc,omitempty"`
	CreatedAtUtc time.Time  `json:"created_at_utc"`
	UpdatedAtUtc time.Time  `json:"updated_at_utc"`
	Version      int64      `json:"version"`
}

func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	out := *c
	out.TaxLines = append([]TaxLine(nil), c.TaxLines...)
	out.DeletedAtUtc = cloneTime(c.DeletedAtUtc)
	return &out
}
