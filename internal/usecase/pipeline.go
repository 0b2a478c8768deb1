package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/domain/statemachine"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Option customises the shared pipeline core of every use case.
type Option func(*pipeline)

// WithClock replaces time.Now; the returned instant is normalised to UTC.
func WithClock(now func() time.Time) Option {
	return func(p *pipeline) { p.clock = now }
}

// WithIDGenerator replaces uuid.NewString for new entity ids.
func WithIDGenerator(newID func() string) Option {
	return func(p *pipeline) { p.newID = newID }
}

// pipeline is the unit-of-work runner shared by the aggregate use cases.
//
// Transitions applied inside a unit are collected and handed to the event sink
// only after the unit committed. A failed publish is logged and never undoes
// the commit.
type pipeline struct {
	uow   interfaces.IUnitOfWork
	sink  interfaces.IEventSink
	clock func() time.Time
	newID func() string
}

func newPipeline(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, opts ...Option) pipeline {
	p := pipeline{uow: uow, sink: sink, clock: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p *pipeline) now() time.Time { return p.clock().UTC() }

// changes collects the transitions of one unit of work.
type changes struct {
	list []statemachine.Change
}

// add records c unless it was an idempotent no-op.
func (c *changes) add(change statemachine.Change) {
	if change.Changed {
		c.list = append(c.list, change)
	}
}

func (c *changes) events(tenant entities.Tenant) []entities.StateTransitionEvent {
	if len(c.list) == 0 {
		return nil
	}
	out := make([]entities.StateTransitionEvent, 0, len(c.list))
	for _, ch := range c.list {
		out = append(out, ch.Event(tenant.OrganizationID()))
	}
	return out
}

// run executes fn as one unit of work and publishes the collected
// transitions once it committed. The events are also returned to the caller.
func (p *pipeline) run(ctx context.Context, tenant entities.Tenant, op string, fn func(ctx context.Context, tx interfaces.ITx, ch *changes) error) ([]entities.StateTransitionEvent, error) {
	if tenant.IsZero() {
		return nil, apperr.Validation("tenant_required", "organization id is required")
	}
	if p.uow == nil {
		return nil, errUnitOfWorkNotConfigured
	}

	var ch changes
	err := p.uow.Do(ctx, tenant, func(ctx context.Context, tx interfaces.ITx) error {
		ch = changes{}
		return fn(ctx, tx, &ch)
	})
	if err != nil {
		if apperr.KindOf(err) == "" {
			log.Printf("[pipeline][usecase] %s failed org=%s err=%v", op, tenant, err)
		}
		return nil, err
	}

	events := ch.events(tenant)
	p.publish(ctx, op, events)
	return events, nil
}

func (p *pipeline) publish(ctx context.Context, op string, events []entities.StateTransitionEvent) {
	if len(events) == 0 || p.sink == nil {
		return
	}
	if err := p.sink.Publish(ctx, events); err != nil {
		log.Printf("[pipeline][usecase] %s publish failed events=%d err=%v", op, len(events), err)
	}
}

func requireID(kind entities.EntityType, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperr.Validation("id_required", "%s id is required", kind)
	}
	return id, nil
}

func stampUTC(t time.Time) *time.Time {
	v := t.UTC()
	return &v
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return stampUTC(*t)
}
