package interfaces

import (
	"context"
	"time"

	"contractor_pipeline/internal/domain/entities"
)

// OverdueCandidate identifies an Issued invoice whose due date has passed.
type OverdueCandidate struct {
	Tenant    entities.Tenant
	InvoiceID string
}

// IOverdueFinder lists overdue candidates across tenants for the periodic sweep.
// Each candidate is then re-checked and transitioned inside its own tenant's unit of work.
type IOverdueFinder interface {
	ListOverdue(ctx context.Context, now time.Time) ([]OverdueCandidate, error)
}
