package entities

import "time"

// EntityType names a state-machine entity in events and errors.
type EntityType string

const (
	EntityTypeLead     EntityType = "lead"
	EntityTypeEstimate EntityType = "estimate"
	EntityTypeJob      EntityType = "job"
	EntityTypeInvoice  EntityType = "invoice"
	EntityTypeCompany  EntityType = "company"
	EntityTypePayment  EntityType = "invoice_payment"
)

// StateTransitionEvent is published once per committed transition.
type StateTransitionEvent struct {
	OrganizationID string     `json:"organization_id"`
	EntityType     EntityType `json:"entity_type"`
	EntityID       string     `json:"entity_id"`
	FromState      string     `json:"from_state"`
	ToState        string     `json:"to_state"`
	OccurredAtUtc  time.Time  `json:"occurred_at_utc"`
}
