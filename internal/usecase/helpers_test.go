package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	t0     = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	tenant = entities.MustTenant("org-1")
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testOptions(clock *fakeClock) []Option {
	return []Option{WithClock(clock.Now), WithIDGenerator(seqIDs())}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func seedLead(t *testing.T, store *memory.Store, l *entities.Lead) {
	t.Helper()
	if l.Status == "" {
		l.Status = entities.LeadStatusNew
	}
	seed(t, store, func(ctx context.Context, tx interfaces.ITx) error { return tx.Leads().Save(ctx, l) })
}

func seedJob(t *testing.T, store *memory.Store, j *entities.Job) {
	t.Helper()
	seed(t, store, func(ctx context.Context, tx interfaces.ITx) error { return tx.Jobs().Save(ctx, j) })
}

func seedInvoice(t *testing.T, store *memory.Store, inv *entities.Invoice) {
	t.Helper()
	seed(t, store, func(ctx context.Context, tx interfaces.ITx) error { return tx.Invoices().Save(ctx, inv) })
}

func seed(t *testing.T, store *memory.Store, fn func(ctx context.Context, tx interfaces.ITx) error) {
	t.Helper()
	if err := store.Do(context.Background(), tenant, fn); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

// recordingSink keeps every published batch.
type recordingSink struct {
	batches [][]entities.StateTransitionEvent
}

func (s *recordingSink) Publish(_ context.Context, events []entities.StateTransitionEvent) error {
	s.batches = append(s.batches, events)
	return nil
}

func (s *recordingSink) all() []entities.StateTransitionEvent {
	var out []entities.StateTransitionEvent
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}
