package taxes

import (
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// Owner is the single Lead or Company a set of tax lines attaches to.
// The caller decides ownership; the builder only applies it.
type Owner struct {
	leadID    string
	companyID string
}

func ForLead(leadID string) Owner { return Owner{leadID: leadID} }

func ForCompany(companyID string) Owner { return Owner{companyID: companyID} }

type Input struct {
	Label string
	Rate  decimal.Decimal
}

// Build drops blank labels, rejects negative rates and stamps every line
// with the owner.
func Build(owner Owner, inputs []Input, newID func() string, now time.Time) ([]entities.TaxLine, error) {
	if (owner.leadID == "") == (owner.companyID == "") {
		return nil, apperr.Validation("tax_owner_exclusive", "tax lines must belong to exactly one lead or company")
	}

	out := make([]entities.TaxLine, 0, len(inputs))
	for i, in := range inputs {
		label := strings.TrimSpace(in.Label)
		if label == "" {
			continue
		}
		if in.Rate.IsNegative() {
			return nil, apperr.Validation("tax_rate_non_negative", "tax line %d: rate must not be negative", i)
		}
		out = append(out, entities.TaxLine{
			ID:           newID(),
			Label:        label,
			Rate:         ledger.RoundRate(in.Rate),
			LeadID:       owner.leadID,
			CompanyID:    owner.companyID,
			CreatedAtUtc: now,
		})
	}
	return out, nil
}
