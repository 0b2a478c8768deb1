package request

import (
	"contractor_pipeline/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one priced line. Amounts accept JSON numbers or strings.
// Without sort_order a line keeps its position in the array.
type LineItemRequest struct {
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	IsTaxLine   bool             `json:"is_tax_line"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	SortOrder   *int             `json:"sort_order"`
}

func toLineInputs(lines []LineItemRequest) []ledger.LineInput {
	if lines == nil {
		return nil
	}
	out := make([]ledger.LineInput, 0, len(lines))
	for i, l := range lines {
		sortOrder := i
		if l.SortOrder != nil {
			sortOrder = *l.SortOrder
		}
		out = append(out, ledger.LineInput{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			IsTaxLine:   l.IsTaxLine,
			TaxRate:     l.TaxRate,
			SortOrder:   sortOrder,
		})
	}
	return out
}
