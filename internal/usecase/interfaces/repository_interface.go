package interfaces

import (
	"context"

	"contractor_pipeline/internal/domain/entities"
)

// Repositories are bound to the tenant of the unit of work that handed them
// out. Get returns an apperr NotFound when the id is unknown within that
// tenant; Save stages the entity and is applied on commit.
//
// Save treats Version 0 as a create and any other Version as the version the
// caller loaded; the commit fails with an apperr Conflict when the stored
// version moved in between.

type ILeadRepository interface {
	Get(ctx context.Context, id string) (*entities.Lead, error)
	Save(ctx context.Context, l *entities.Lead) error
}

type ICompanyRepository interface {
	Get(ctx context.Context, id string) (*entities.Company, error)
	Save(ctx context.Context, c *entities.Company) error
}

type IEstimateRepository interface {
	Get(ctx context.Context, id string) (*entities.Estimate, error)
	Save(ctx context.Context, e *entities.Estimate) error
}

// IJobRepository persists the job aggregate including milestones and expenses.
type IJobRepository interface {
	Get(ctx context.Context, id string) (*entities.Job, error)
	Save(ctx context.Context, j *entities.Job) error
}

type IInvoiceRepository interface {
	Get(ctx context.Context, id string) (*entities.Invoice, error)
	Save(ctx context.Context, i *entities.Invoice) error
}

// IInvoicePaymentRepository is append-only.
type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p *entities.InvoicePayment) error
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
