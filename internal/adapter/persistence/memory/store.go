// Package memory is an in-process unit of work used for local runs and tests.
//
// Data is kept per tenant. Loads and commits copy entities, so nothing a unit
// of work mutates is visible elsewhere until its commit succeeds.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
)

// SaveHook runs on every staged write. A non-nil error fails the Save, which
// lets tests inject persistence failures at a precise point of a unit of work.
type SaveHook func(kind entities.EntityType, id string) error

type Option func(*Store)

func WithSaveHook(h SaveHook) Option {
	return func(s *Store) { s.saveHook = h }
}

type bucket struct {
	leads     map[string]*entities.Lead
	companies map[string]*entities.Company
	estimates map[string]*entities.Estimate
	jobs      map[string]*entities.Job
	invoices  map[string]*entities.Invoice
	payments  []*entities.InvoicePayment
}

func newBucket() *bucket {
	return &bucket{
		leads:     make(map[string]*entities.Lead),
		companies: make(map[string]*entities.Company),
		estimates: make(map[string]*entities.Estimate),
		jobs:      make(map[string]*entities.Job),
		invoices:  make(map[string]*entities.Invoice),
	}
}

type Store struct {
	mu       sync.RWMutex
	tenants  map[string]*bucket
	saveHook SaveHook
}

var (
	_ interfaces.IUnitOfWork    = (*Store)(nil)
	_ interfaces.IOverdueFinder = (*Store)(nil)
)

func New(opts ...Option) *Store {
	s := &Store{tenants: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Do(ctx context.Context, tenant entities.Tenant, fn func(ctx context.Context, tx interfaces.ITx) error) error {
	if tenant.IsZero() {
		return apperr.Validation("tenant_required", "organization id is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTx(s, tenant)
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(t)
}

func (s *Store) commit(t *tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.tenants[t.tenant.OrganizationID()]
	if !ok {
		b = newBucket()
	}
	for _, st := range t.stagers() {
		if err := st.check(b); err != nil {
			return err
		}
	}
	for _, st := range t.stagers() {
		st.apply(b)
	}
	s.tenants[t.tenant.OrganizationID()] = b
	return nil
}

// ListOverdue scans every tenant for Issued invoices due before now, ordered
// by organization and invoice id.
func (s *Store) ListOverdue(ctx context.Context, now time.Time) ([]interfaces.OverdueCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []interfaces.OverdueCandidate
	for orgID, b := range s.tenants {
		tenant, err := entities.NewTenant(orgID)
		if err != nil {
			continue
		}
		for id, inv := range b.invoices {
			if inv.IsPastDue(now) {
				out = append(out, interfaces.OverdueCandidate{Tenant: tenant, InvoiceID: id})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tenant.OrganizationID() != out[j].Tenant.OrganizationID() {
			return out[i].Tenant.OrganizationID() < out[j].Tenant.OrganizationID()
		}
		return out[i].InvoiceID < out[j].InvoiceID
	})
	return out, nil
}

func (s *Store) bucketFor(tenant entities.Tenant) *bucket {
	return s.tenants[tenant.OrganizationID()]
}
