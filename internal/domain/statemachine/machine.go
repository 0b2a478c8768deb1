// Package statemachine holds the permit-table engine and the four concrete
// machines (lead, estimate, job, invoice) built on it.
//
// A Machine is a value describing which edges exist and how an entity changes
// when it arrives in a state. It holds no entity data: tables are assembled
// once at package initialisation and only read afterwards, so the package
// level machines are safe for concurrent use.
package statemachine

import (
	"fmt"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
)

// Edge is a permitted directed (from, to) pair.
type Edge[S comparable] struct {
	From S
	To   S
}

// Record describes a transition that was applied (or accepted as a no-op).
type Record[S comparable] struct {
	From       S
	To         S
	OccurredAt time.Time
	// Changed is false only for an idempotent self-transition.
	Changed bool
}

// ApplyFunc mutates the entity on arrival in to: status, the timestamp owned
// by that state and UpdatedAtUtc. It must not fail.
type ApplyFunc[E any, S comparable] func(e *E, from, to S, now time.Time)

type Machine[E any, S comparable] struct {
	kind       entities.EntityType
	idOf       func(*E) string
	stateOf    func(*E) S
	apply      ApplyFunc[E, S]
	edges      map[Edge[S]]struct{}
	idempotent map[S]struct{}
}

func New[E any, S comparable](kind entities.EntityType, idOf func(*E) string, stateOf func(*E) S, apply ApplyFunc[E, S]) *Machine[E, S] {
	return &Machine[E, S]{
		kind:       kind,
		idOf:       idOf,
		stateOf:    stateOf,
		apply:      apply,
		edges:      make(map[Edge[S]]struct{}),
		idempotent: make(map[S]struct{}),
	}
}

// Permit registers one directed edge. Only call while building a machine.
func (m *Machine[E, S]) Permit(from, to S) *Machine[E, S] {
	m.edges[Edge[S]{From: from, To: to}] = struct{}{}
	return m
}

// Idempotent makes a transition from s to s succeed without mutating the entity.
// Only call while building a machine.
func (m *Machine[E, S]) Idempotent(s S) *Machine[E, S] {
	m.idempotent[s] = struct{}{}
	return m
}

func (m *Machine[E, S]) Kind() entities.EntityType { return m.kind }

func (m *Machine[E, S]) CanTransition(from, to S) bool {
	_, ok := m.edges[Edge[S]{From: from, To: to}]
	return ok
}

// Edges returns a copy of the permit table.
func (m *Machine[E, S]) Edges() []Edge[S] {
	out := make([]Edge[S], 0, len(m.edges))
	for e := range m.edges {
		out = append(out, e)
	}
	return out
}

// Transition moves e to the target state. A missing edge returns a Conflict
// and leaves e untouched.
func (m *Machine[E, S]) Transition(e *E, to S, now time.Time) (Record[S], error) {
	if e == nil {
		return Record[S]{}, apperr.Validation("entity_required", "%s is required", m.kind)
	}
	from := m.stateOf(e)

	if from == to {
		if _, ok := m.idempotent[to]; ok {
			return Record[S]{From: from, To: to, OccurredAt: now, Changed: false}, nil
		}
	}
	if !m.CanTransition(from, to) {
		return Record[S]{}, apperr.TransitionConflict(string(m.kind), m.idOf(e), fmt.Sprint(from), fmt.Sprint(to))
	}

	m.apply(e, from, to, now)
	return Record[S]{From: from, To: to, OccurredAt: now, Changed: true}, nil
}
