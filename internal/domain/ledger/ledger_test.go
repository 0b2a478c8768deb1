package ledger

import (
	"errors"
	"fmt"
	"testing"

	"contractor_pipeline/internal/domain/apperr"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rate(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("li-%d", n)
	}
}

func TestCompute_ChargeAndTax(t *testing.T) {
	lines, err := Build([]LineInput{
		{Description: "Labor", Quantity: d("2"), UnitPrice: d("10")},
		{Description: "Sales tax", IsTaxLine: true, TaxRate: rate("10")},
	}, RejectBlank, seqIDs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Compute(lines)
	if !got.Subtotal.Equal(d("20.00")) || !got.TaxTotal.Equal(d("2.00")) || !got.Total.Equal(d("22.00")) {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestCompute_InvoiceScenario(t *testing.T) {
	lines, err := Build([]LineInput{
		{Description: "Framing", Quantity: d("3"), UnitPrice: d("100")},
		{Description: "County tax", IsTaxLine: true, TaxRate: rate("8.25")},
	}, RejectBlank, seqIDs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Compute(lines)
	if !got.Subtotal.Equal(d("300")) || !got.TaxTotal.Equal(d("24.75")) || !got.Total.Equal(d("324.75")) {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	// 0.5 × 20.01 = 10.005 at the subtotal stage.
	lines, err := Build([]LineInput{{Description: "Half hour", Quantity: d("0.5"), UnitPrice: d("20.01")}}, RejectBlank, seqIDs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Compute(lines)
	if got.Subtotal.String() != "10.01" {
		t.Fatalf("expected 10.01, got %s", got.Subtotal)
	}
}

func TestCompute_ComponentLevelRounding(t *testing.T) {
	// Rounding each component gives 10.01 + 0.01; one final rounding of
	// 10.0140045 would give 10.01.
	lines, err := Build([]LineInput{
		{Description: "Half hour", Quantity: d("0.5"), UnitPrice: d("20.01")},
		{Description: "State", IsTaxLine: true, TaxRate: rate("0.0450")},
		{Description: "City", IsTaxLine: true, TaxRate: rate("0.0450")},
	}, RejectBlank, seqIDs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Compute(lines)
	if got.Subtotal.String() != "10.01" || got.TaxTotal.String() != "0.01" || got.Total.String() != "10.02" {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil)
	if !got.Subtotal.IsZero() || !got.TaxTotal.IsZero() || !got.Total.IsZero() {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestBuild_NormalisesAndSorts(t *testing.T) {
	lines, err := Build([]LineInput{
		{Description: " Tax ", IsTaxLine: true, TaxRate: rate("7.123456"), Quantity: d("9"), UnitPrice: d("9"), SortOrder: 2},
		{Description: "Second", Quantity: d("1"), UnitPrice: d("3.456"), SortOrder: 1},
		{Description: "First", Quantity: d("1"), UnitPrice: d("1"), SortOrder: 1},
		{Description: "Zero", Quantity: d("1"), UnitPrice: d("0"), SortOrder: 0},
	}, RejectBlank, seqIDs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"Zero", "Second", "First", "Tax"}
	for i, want := range order {
		if lines[i].Description != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, lines[i].Description)
		}
	}
	tax := lines[3]
	if !tax.Quantity.Equal(d("1")) || !tax.UnitPrice.IsZero() || tax.TaxRate.String() != "7.1235" {
		t.Fatalf("unexpected tax line: %+v", tax)
	}
	if lines[1].UnitPrice.String() != "3.46" {
		t.Fatalf("expected price rounded to 3.46, got %s", lines[1].UnitPrice)
	}
	if lines[0].ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestBuild_BlankDescriptionPolicy(t *testing.T) {
	inputs := []LineInput{
		{Description: "  ", Quantity: d("1"), UnitPrice: d("5")},
		{Description: "Kept", Quantity: d("1"), UnitPrice: d("5")},
	}

	t.Run("estimate drops", func(t *testing.T) {
		lines, err := Build(inputs, DropBlank, seqIDs())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 1 || lines[0].Description != "Kept" {
			t.Fatalf("unexpected lines: %+v", lines)
		}
	})

	t.Run("invoice rejects", func(t *testing.T) {
		_, err := Build(inputs, RejectBlank, seqIDs())
		assertRule(t, err, "description_required")
	})
}

func TestBuild_ValidationRules(t *testing.T) {
	cases := []struct {
		name  string
		input LineInput
		rule  string
	}{
		{name: "zero quantity", input: LineInput{Description: "x", Quantity: d("0"), UnitPrice: d("1")}, rule: "quantity_positive"},
		{name: "negative quantity", input: LineInput{Description: "x", Quantity: d("-1"), UnitPrice: d("1")}, rule: "quantity_positive"},
		{name: "negative price", input: LineInput{Description: "x", Quantity: d("1"), UnitPrice: d("-0.01")}, rule: "unit_price_non_negative"},
		{name: "missing rate", input: LineInput{Description: "tax", IsTaxLine: true}, rule: "tax_rate_non_negative"},
		{name: "negative rate", input: LineInput{Description: "tax", IsTaxLine: true, TaxRate: rate("-1")}, rule: "tax_rate_non_negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build([]LineInput{tc.input}, DropBlank, seqIDs())
			assertRule(t, err, tc.rule)
		})
	}
}

func assertRule(t *testing.T, err error, rule string) {
	t.Helper()
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Rule != rule {
		t.Fatalf("expected rule %s, got %+v", rule, appErr)
	}
}
