package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus represents the lifecycle of a prospective customer.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusConverted LeadStatus = "converted"
)

// LeadStatuses is the closed status domain of a Lead.
var LeadStatuses = []LeadStatus{LeadStatusNew, LeadStatusLost, LeadStatusConverted}

// Lead is a prospective customer of the contracting business.
//
// Status and LostAtUtc are written only by the lead state machine.
type Lead struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	Name           string           `json:"name"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Address        string           `json:"address,omitempty"`
	Source         string           `json:"source,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CompanyID      string           `json:"company_id,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	TaxLines       []TaxLine        `json:"tax_lines,omitempty"`

	Status    LeadStatus `json:"status"`
	LostAtUtc *time.Time `json:"lost_at_utc,omitempty"`

	IsDeleted    bool       `json:"is_deleted"`
	DeletedAtUtc *time.Time `json:"deleted_at_utc,omitempty"`
	CreatedAtUtc time.Time  `json:"created_at_utc"`
	UpdatedAtUtc time.Time  `json:"updated_at_utc"`
	Version      int64      `json:"version"`
}

func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}
	c := *l
	c.TaxLines = append([]TaxLine(nil), l.TaxLines...)
	if l.EstimatedValue != nil {
		v := *l.EstimatedValue
		c.EstimatedValue = &v
	}
	c.LostAtUtc = cloneTime(l.LostAtUtc)
	c.DeletedAtUtc = cloneTime(l.DeletedAtUtc)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
