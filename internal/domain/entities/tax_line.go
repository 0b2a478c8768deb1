package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxLine is a reusable named rate owned by exactly one Lead or Company.
// Rate is expressed in percentage points with 4 fractional digits (7.5000 = 7.5%).
type TaxLine struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Rate         decimal.Decimal `json:"rate"`
	LeadID       string          `json:"lead_id,omitempty"`
	CompanyID    string          `json:"company_id,omitempty"`
	CreatedAtUtc time.Time       `json:"created_at_utc"`
}
