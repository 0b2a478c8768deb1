package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/usecase/interfaces"
)

// SweepReport summarises one overdue sweep.
type SweepReport struct {
	Candidates int
	Marked     int
	Skipped    int
	Failed     int
}

type IOverdueSweeper interface {
	SweepOnce(ctx context.Context) (SweepReport, error)
	Run(ctx context.Context, interval time.Duration)
}

// OverdueSweeper periodically moves Issued invoices past their due date to
// Overdue through the same transition MarkInvoiceOverdue uses. Each candidate
// is re-checked inside its own tenant's unit of work, so an invoice paid
// between listing and marking is skipped.
type OverdueSweeper struct {
	finder   interfaces.IOverdueFinder
	invoices IInvoiceUseCase
	clock    func() time.Time
}

var _ IOverdueSweeper = (*OverdueSweeper)(nil)

func NewOverdueSweeper(finder interfaces.IOverdueFinder, invoices IInvoiceUseCase, opts ...Option) *OverdueSweeper {
	p := newPipeline(nil, nil, opts...)
	return &OverdueSweeper{finder: finder, invoices: invoices, clock: p.now}
}

func (s *OverdueSweeper) SweepOnce(ctx context.Context) (SweepReport, error) {
	candidates, err := s.finder.ListOverdue(ctx, s.clock())
	if err != nil {
		log.Printf("[invoice][sweeper] list overdue failed err=%v", err)
		return SweepReport{}, err
	}

	report := SweepReport{Candidates: len(candidates)}
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		_, _, err := s.invoices.MarkInvoiceOverdue(ctx, c.Tenant, c.InvoiceID)
		switch {
		case err == nil:
			report.Marked++
		case apperr.IsConflict(err) || apperr.IsNotFound(err):
			report.Skipped++
			log.Printf("[invoice][sweeper] skipped org=%s invoice_id=%s reason=%v", c.Tenant, c.InvoiceID, err)
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return report, err
		default:
			report.Failed++
			log.Printf("[invoice][sweeper] mark overdue failed org=%s invoice_id=%s err=%v", c.Tenant, c.InvoiceID, err)
		}
	}
	if report.Candidates > 0 {
		log.Printf("[invoice][sweeper] sweep done candidates=%d marked=%d skipped=%d failed=%d",
			report.Candidates, report.Marked, report.Skipped, report.Failed)
	}
	return report, nil
}

// Run sweeps every interval until ctx is done.
func (s *OverdueSweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Printf("[invoice][sweeper] disabled interval=%s", interval)
		return
	}
	log.Printf("[invoice][sweeper] started interval=%s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[invoice][sweeper] stopped")
			return
		case <-ticker.C:
			_, _ = s.SweepOnce(ctx)
		}
	}
}
