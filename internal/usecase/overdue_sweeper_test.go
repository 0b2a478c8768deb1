package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
	mock_interfaces "contractor_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOverdueSweeper_SweepOnce(t *testing.T) {
	store := memory.New()
	clock := &fakeClock{now: t0}
	past := t0.Add(-time.Hour)
	future := t0.Add(time.Hour)
	seedInvoice(t, store, &entities.Invoice{ID: "i-1", JobID: "j-1", Status: entities.InvoiceStatusIssued, DueAtUtc: &past})
	seedInvoice(t, store, &entities.Invoice{ID: "i-2", JobID: "j-1", Status: entities.InvoiceStatusIssued, DueAtUtc: &future})
	seedInvoice(t, store, &entities.Invoice{ID: "i-3", JobID: "j-1", Status: entities.InvoiceStatusPaid, DueAtUtc: &past})

	sink := &recordingSink{}
	invoices := NewInvoiceUseCase(store, sink, testOptions(clock)...)
	sweeper := NewOverdueSweeper(store, invoices, WithClock(clock.Now))

	report, err := sweeper.SweepOnce(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Candidates != 1 || report.Marked != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	got, _ := invoices.GetInvoice(context.Background(), tenant, "i-1")
	if got.Status != entities.InvoiceStatusOverdue {
		t.Fatalf("expected overdue, got %s", got.Status)
	}
	if ev := sink.all(); len(ev) != 1 || ev[0].FromState != "issued" || ev[0].ToState != "overdue" {
		t.Fatalf("unexpected events: %+v", ev)
	}

	report, err = sweeper.SweepOnce(context.Background())
	if err != nil || report.Candidates != 0 {
		t.Fatalf("second sweep should find nothing, got %+v err=%v", report, err)
	}
}

func TestOverdueSweeper_SkipsInvoicesPaidMeanwhile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.New()
	clock := &fakeClock{now: t0}
	past := t0.Add(-time.Hour)
	seedInvoice(t, store, &entities.Invoice{ID: "i-1", Status: entities.InvoiceStatusPaid, DueAtUtc: &past})

	finder := mock_interfaces.NewMockIOverdueFinder(ctrl)
	finder.EXPECT().ListOverdue(gomock.Any(), t0).Return([]interfaces.OverdueCandidate{
		{Tenant: tenant, InvoiceID: "i-1"},
		{Tenant: tenant, InvoiceID: "i-404"},
	}, nil)

	sweeper := NewOverdueSweeper(finder, NewInvoiceUseCase(store, nil, testOptions(clock)...), WithClock(clock.Now))
	report, err := sweeper.SweepOnce(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Candidates != 2 || report.Skipped != 2 || report.Marked != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestOverdueSweeper_FinderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mock_interfaces.NewMockIOverdueFinder(ctrl)
	finder.EXPECT().ListOverdue(gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))

	sweeper := NewOverdueSweeper(finder, nil)
	if _, err := sweeper.SweepOnce(context.Background()); err == nil || err.Error() != "scan failed" {
		t.Fatalf("expected scan failed, got %v", err)
	}
}

func TestOverdueSweeper_RunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mock_interfaces.NewMockIOverdueFinder(ctrl)
	finder.EXPECT().ListOverdue(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewOverdueSweeper(finder, nil).Run(ctx, time.Millisecond)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop")
	}
}
