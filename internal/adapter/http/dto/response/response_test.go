package response

import (
	"encoding/json"
	"testing"
	"time"

	"contractor_pipeline/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var now = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func TestFromInvoice_MoneyAsFixedStrings(t *testing.T) {
	inv := entities.Invoice{
		ID:     "inv-1",
		JobID:  "job-1",
		Status: entities.InvoiceStatusIssued,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Framing", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(100)},
			{ID: "li-2", Description: "County tax", Quantity: decimal.NewFromInt(1), IsTaxLine: true, TaxRate: decimal.RequireFromString("8.25"), SortOrder: 1},
		},
		Subtotal: decimal.NewFromInt(300),
		TaxTotal: decimal.RequireFromString("24.75"),
		Amount:   decimal.RequireFromString("324.75"),
	}

	res := FromInvoice(inv)
	if res.Subtotal != "300.00" || res.TaxTotal != "24.75" || res.Amount != "324.75" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.LineItems[0].LineTotal != "300.00" || res.LineItems[1].TaxRate != "8.2500" || res.LineItems[1].LineTotal != "0.00" {
		t.Fatalf("unexpected lines: %+v", res.LineItems)
	}
}

func TestFromJob_TotalsExpenses(t *testing.T) {
	job := entities.Job{
		ID:     "job-1",
		Status: entities.JobStatusInProgress,
		Milestones: []entities.JobMilestone{
			{ID: "m-1", Title: "Framing", Status: entities.MilestoneStatusPending},
		},
		Expenses: []entities.JobExpense{
			{ID: "x-1", Vendor: "Lumber Co", Amount: decimal.RequireFromString("120.5"), SpentAtUtc: now},
			{ID: "x-2", Vendor: "Hardware", Amount: decimal.RequireFromString("9.45"), SpentAtUtc: now},
		},
	}
	res := FromJob(job)
	if res.TotalExpenses != "129.95" || res.Expenses[0].Amount != "120.50" || res.Milestones[0].Status != "pending" {
		t.Fatalf("unexpected job response: %+v", res)
	}
}

func TestWithEvents_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(WithEvents(FromLead(entities.Lead{ID: "lead-1", Status: entities.LeadStatusNew}), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	events, ok := body["events"].([]any)
	if !ok || len(events) != 0 {
		t.Fatalf("expected empty events array, got %s", b)
	}
}

func TestFromInvoicePayment(t *testing.T) {
	p := entities.InvoicePayment{
		ID:                 "pay-1",
		InvoiceID:          "inv-1",
		Amount:             decimal.RequireFromString("324.75"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPaymentID:  "123",
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}
	res := FromInvoicePayment(p)
	if res.PaymentID != "pay-1" || res.InvoiceID != "inv-1" || res.Status != "approved" || res.Amount != "324.75" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" || !res.Date.Equal(now) {
		t.Fatalf("unexpected payload: %+v", res)
	}
}
