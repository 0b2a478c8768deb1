package memory

import (
	"context"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
)

// stager is the type-erased commit side of a staged repository.
type stager interface {
	check(b *bucket) error
	apply(b *bucket)
}

type tx struct {
	store  *Store
	tenant entities.Tenant

	leads     *entityRepo[entities.Lead]
	companies *entityRepo[entities.Company]
	estimates *entityRepo[entities.Estimate]
	jobs      *entityRepo[entities.Job]
	invoices  *entityRepo[entities.Invoice]
	payments  *paymentRepo
}

var _ interfaces.ITx = (*tx)(nil)

func newTx(s *Store, tenant entities.Tenant) *tx {
	t := &tx{store: s, tenant: tenant}
	t.leads = newEntityRepo(t, leadTable)
	t.companies = newEntityRepo(t, companyTable)
	t.estimates = newEntityRepo(t, estimateTable)
	t.jobs = newEntityRepo(t, jobTable)
	t.invoices = newEntityRepo(t, invoiceTable)
	t.payments = &paymentRepo{tx: t}
	return t
}

func (t *tx) Tenant() entities.Tenant                        { return t.tenant }
func (t *tx) Leads() interfaces.ILeadRepository              { return t.leads }
func (t *tx) Companies() interfaces.ICompanyRepository       { return t.companies }
func (t *tx) Estimates() interfaces.IEstimateRepository      { return t.estimates }
func (t *tx) Jobs() interfaces.IJobRepository                { return t.jobs }
func (t *tx) Invoices() interfaces.IInvoiceRepository        { return t.invoices }
func (t *tx) Payments() interfaces.IInvoicePaymentRepository { return t.payments }

func (t *tx) stagers() []stager {
	return []stager{t.leads, t.companies, t.estimates, t.jobs, t.invoices, t.payments}
}

func (t *tx) hook(kind entities.EntityType, id string) error {
	if t.store.saveHook == nil {
		return nil
	}
	return t.store.saveHook(kind, id)
}

// table describes how one entity kind is stored in a bucket.
type table[T any] struct {
	kind    entities.EntityType
	rows    func(b *bucket) map[string]*T
	id      func(e *T) string
	org     func(e *T) *string
	version func(e *T) *int64
	clone   func(e *T) *T
}

var leadTable = table[entities.Lead]{
	kind:    entities.EntityTypeLead,
	rows:    func(b *bucket) map[string]*entities.Lead { return b.leads },
	id:      func(e *entities.Lead) string { return e.ID },
	org:     func(e *entities.Lead) *string { return &e.OrganizationID },
	version: func(e *entities.Lead) *int64 { return &e.Version },
	clone:   (*entities.Lead).Clone,
}

var companyTable = table[entities.Company]{
	kind:    entities.EntityTypeCompany,
	rows:    func(b *bucket) map[string]*entities.Company { return b.companies },
	id:      func(e *entities.Company) string { return e.ID },
	org:     func(e *entities.Company) *string { return &e.OrganizationID },
	version: func(e *entities.Company) *int64 { return &e.Version },
	clone:   (*entities.Company).Clone,
}

var estimateTable = table[entities.Estimate]{
	kind:    entities.EntityTypeEstimate,
	rows:    func(b *bucket) map[string]*entities.Estimate { return b.estimates },
	id:      func(e *entities.Estimate) string { return e.ID },
	org:     func(e *entities.Estimate) *string { return &e.OrganizationID },
	version: func(e *entities.Estimate) *int64 { return &e.Version },
	clone:   (*entities.Estimate).Clone,
}

var jobTable = table[entities.Job]{
	kind:    entities.EntityTypeJob,
	rows:    func(b *bucket) map[string]*entities.Job { return b.jobs },
	id:      func(e *entities.Job) string { return e.ID },
	org:     func(e *entities.Job) *string { return &e.OrganizationID },
	version: func(e *entities.Job) *int64 { return &e.Version },
	clone:   (*entities.Job).Clone,
}

var invoiceTable = table[entities.Invoice]{
	kind:    entities.EntityTypeInvoice,
	rows:    func(b *bucket) map[string]*entities.Invoice { return b.invoices },
	id:      func(e *entities.Invoice) string { return e.ID },
	org:     func(e *entities.Invoice) *string { return &e.OrganizationID },
	version: func(e *entities.Invoice) *int64 { return &e.Version },
	clone:   (*entities.Invoice).Clone,
}

// entityRepo stages versioned writes for one entity kind.
type entityRepo[T any] struct {
	tx     *tx
	table  table[T]
	staged map[string]*T
	order  []string
}

func newEntityRepo[T any](t *tx, tbl table[T]) *entityRepo[T] {
	return &entityRepo[T]{tx: t, table: tbl, staged: make(map[string]*T)}
}

func (r *entityRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e, ok := r.staged[id]; ok {
		return r.table.clone(e), nil
	}

	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	b := r.tx.store.bucketFor(r.tx.tenant)
	if b == nil {
		return nil, apperr.NotFound(string(r.table.kind), id)
	}
	e, ok := r.table.rows(b)[id]
	if !ok {
		return nil, apperr.NotFound(string(r.table.kind), id)
	}
	return r.table.clone(e), nil
}

func (r *entityRepo[T]) Save(ctx context.Context, e *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e == nil {
		return apperr.Validation("entity_required", "%s is required", r.table.kind)
	}
	id := r.table.id(e)
	if id == "" {
		return apperr.Validation("id_required", "%s id is required", r.table.kind)
	}
	org := r.table.org(e)
	if *org == "" {
		*org = r.tx.tenant.OrganizationID()
	} else if !r.tx.tenant.Owns(*org) {
		return apperr.NotFound(string(r.table.kind), id)
	}
	if err := r.tx.hook(r.table.kind, id); err != nil {
		return err
	}

	if _, ok := r.staged[id]; !ok {
		r.order = append(r.order, id)
	}
	r.staged[id] = e
	return nil
}

func (r *entityRepo[T]) check(b *bucket) error {
	rows := r.table.rows(b)
	for _, id := range r.order {
		want := *r.table.version(r.staged[id])
		cur, exists := rows[id]
		switch {
		case want == 0 && exists:
			return apperr.Conflict(string(r.table.kind), id, "already exists")
		case want != 0 && !exists:
			return apperr.Conflict(string(r.table.kind), id, "was removed concurrently")
		case want != 0 && *r.table.version(cur) != want:
			return apperr.Conflict(string(r.table.kind), id, "was modified concurrently (expected version %d)", want)
		}
	}
	return nil
}

func (r *entityRepo[T]) apply(b *bucket) {
	rows := r.table.rows(b)
	for _, id := range r.order {
		e := r.staged[id]
		*r.table.version(e)++
		rows[id] = r.table.clone(e)
	}
}

type paymentRepo struct {
	tx     *tx
	staged []*entities.InvoicePayment
}

func (r *paymentRepo) Create(ctx context.Context, p *entities.InvoicePayment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.ID == "" {
		return apperr.Validation("id_required", "invoice payment id is required")
	}
	if p.OrganizationID == "" {
		p.OrganizationID = r.tx.tenant.OrganizationID()
	} else if !r.tx.tenant.Owns(p.OrganizationID) {
		return apperr.NotFound(string(entities.EntityTypePayment), p.ID)
	}
	if err := r.tx.hook(entities.EntityTypePayment, p.ID); err != nil {
		return err
	}
	r.staged = append(r.staged, p.Clone())
	return nil
}

func (r *paymentRepo) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entities.InvoicePayment, 0)

	r.tx.store.mu.RLock()
	if b := r.tx.store.bucketFor(r.tx.tenant); b != nil {
		for _, p := range b.payments {
			if p.InvoiceID == invoiceID {
				out = append(out, *p.Clone())
			}
		}
	}
	r.tx.store.mu.RUnlock()

	for _, p := range r.staged {
		if p.InvoiceID == invoiceID {
			out = append(out, *p.Clone())
		}
	}
	return out, nil
}

func (r *paymentRepo) check(b *bucket) error {
	for _, p := range r.staged {
		for _, existing := range b.payments {
			if existing.ID == p.ID {
				return apperr.Conflict(string(entities.EntityTypePayment), p.ID, "already exists")
			}
		}
	}
	return nil
}

func (r *paymentRepo) apply(b *bucket) {
	b.payments = append(b.payments, r.staged...)
}
