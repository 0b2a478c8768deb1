package entities

import "github.com/shopspring/decimal"

// LineItem is a priced charge or a tax surcharge on an Estimate or Invoice.
//
// Tax lines carry only a rate: their Quantity is always 1 and UnitPrice 0.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsTaxLine   bool            `json:"is_tax_line"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	SortOrder   int             `json:"sort_order"`
}

// LineTotal is quantity × unit price for charge lines and zero for tax lines.
func (li LineItem) LineTotal() decimal.Decimal {
	if li.IsTaxLine {
		return decimal.Zero
	}
	return li.Quantity.Mul(li.UnitPrice)
}
