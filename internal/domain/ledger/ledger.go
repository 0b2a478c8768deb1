// Package ledger validates, normalises, orders and totals the line items of
// estimates and invoices.
//
// Rounding is component-level and half away from zero:
//
//	Subtotal = round2(Σ quantity × unitPrice)            over charge lines
//	TaxTotal = round2(Σ rawSubtotal × taxRate / 100)     over tax lines
//	Total    = Subtotal + TaxTotal
package ledger

import (
	"sort"
	"strings"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	MoneyPlaces = 2
	RatePlaces  = 4
)

var hundred = decimal.NewFromInt(100)

// BlankPolicy decides what happens to a line whose description is blank.
//
// Estimates drop such lines silently while invoices reject them. The two
// paths have always behaved differently; the difference is kept on purpose
// until product confirms whether it should be unified.
type BlankPolicy int

const (
	// DropBlank silently skips blank-description lines (estimate path).
	DropBlank BlankPolicy = iota
	// RejectBlank fails validation on blank-description lines (invoice path).
	RejectBlank
)

// LineInput is one requested line. TaxRate is only read for tax lines;
// Quantity and UnitPrice only for charge lines.
type LineInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	IsTaxLine   bool
	TaxRate     *decimal.Decimal
	SortOrder   int
}

// Totals are the derived money fields of a priced document.
type Totals struct {
	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// Build validates and materialises line items, stably sorted by SortOrder.
// newID supplies ids for the created lines.
func Build(inputs []LineInput, policy BlankPolicy, newID func() string) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(inputs))
	for i, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			if policy == DropBlank {
				continue
			}
			return nil, apperr.Validation("description_required", "line %d: description is required", i)
		}

		item := entities.LineItem{
			ID:          newID(),
			Description: desc,
			IsTaxLine:   in.IsTaxLine,
			SortOrder:   in.SortOrder,
		}
		if in.IsTaxLine {
			if in.TaxRate == nil || in.TaxRate.IsNegative() {
				return nil, apperr.Validation("tax_rate_non_negative", "line %d: tax lines require a non-negative tax rate", i)
			}
			item.Quantity = decimal.NewFromInt(1)
			item.UnitPrice = decimal.Zero
			item.TaxRate = RoundRate(*in.TaxRate)
		} else {
			if !in.Quantity.IsPositive() {
				return nil, apperr.Validation("quantity_positive", "line %d: quantity must be greater than zero", i)
			}
			if in.UnitPrice.IsNegative() {
				return nil, apperr.Validation("unit_price_non_negative", "line %d: unit price must not be negative", i)
			}
			item.Quantity = in.Quantity
			item.UnitPrice = RoundMoney(in.UnitPrice)
			item.TaxRate = decimal.Zero
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(a, b int) bool { return items[a].SortOrder < items[b].SortOrder })
	return items, nil
}

// Compute totals a line set. It never fails: lines are assumed built by Build.
func Compute(lines []entities.LineItem) Totals {
	raw := decimal.Zero
	for _, li := range lines {
		if !li.IsTaxLine {
			raw = raw.Add(li.Quantity.Mul(li.UnitPrice))
		}
	}

	rawTax := decimal.Zero
	for _, li := range lines {
		if li.IsTaxLine {
			rawTax = rawTax.Add(raw.Mul(li.TaxRate).Div(hundred))
		}
	}

	subtotal := RoundMoney(raw)
	taxTotal := RoundMoney(rawTax)
	return Totals{
		Subtotal: subtotal,
		TaxTotal: taxTotal,
		Total:    subtotal.Add(taxTotal),
	}
}

// RoundMoney rounds half away from zero to 2 fractional digits.
func RoundMoney(d decimal.Decimal) decimal.Decimal { return d.Round(MoneyPlaces) }

// RoundRate rounds half away from zero to 4 fractional digits.
func RoundRate(d decimal.Decimal) decimal.Decimal { return d.Round(RatePlaces) }
