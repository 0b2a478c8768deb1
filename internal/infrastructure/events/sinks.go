package events

import (
	"context"
	"errors"
	"fmt"
	"log"

	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
)

// LogSink writes one log line per transition.
type LogSink struct{}

var _ interfaces.IEventSink = LogSink{}

func (LogSink) Publish(_ context.Context, events []entities.StateTransitionEvent) error {
	for _, ev := range events {
		log.Printf("[pipeline][event] org=%s entity=%s id=%s from=%s to=%s at=%s",
			ev.OrganizationID, ev.EntityType, ev.EntityID, ev.FromState, ev.ToState, ev.OccurredAtUtc.Format("2006-01-02T15:04:05.000Z"))
	}
	return nil
}

// FanOut publishes every batch to each sink in order. Every sink is tried;
// the failures are joined.
type FanOut []interfaces.IEventSink

var _ interfaces.IEventSink = FanOut(nil)

func (f FanOut) Publish(ctx context.Context, events []entities.StateTransitionEvent) error {
	var errs []error
	for i, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Publish(ctx, events); err != nil {
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
