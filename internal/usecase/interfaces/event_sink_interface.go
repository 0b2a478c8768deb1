package interfaces

import (
	"context"

	"contractor_pipeline/internal/domain/entities"
)

// IEventSink receives the transitions of a unit of work after it committed.
type IEventSink interface {
	Publish(ctx context.Context, events []entities.StateTransitionEvent) error
}
