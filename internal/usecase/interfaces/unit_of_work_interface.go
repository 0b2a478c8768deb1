package interfaces

import (
	"context"

	"contractor_pipeline/internal/domain/entities"
)

// ITx is one tenant-scoped unit of work.
type ITx interface {
	Tenant() entities.Tenant
	Leads() ILeadRepository
	Companies() ICompanyRepository
	Estimates() IEstimateRepository
	Jobs() IJobRepository
	Invoices() IInvoiceRepository
	Payments() IInvoicePaymentRepository
}

// IUnitOfWork runs fn against a fresh ITx for tenant.
//
// Everything staged through the ITx commits atomically when fn returns nil and
// is discarded otherwise. Loads hand out private copies, so nothing fn mutates
// is visible to other units before commit. Implementations honour ctx and
// never commit once it is done.
type IUnitOfWork interface {
	Do(ctx context.Context, tenant entities.Tenant, fn func(ctx context.Context, tx ITx) error) error
}
