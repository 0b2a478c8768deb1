package response

import (
	"time"

	"contractor_pipeline/internal/domain/entities"
)

// EventResponse is one committed state transition.
type EventResponse struct {
	OrganizationID string    `json:"organization_id"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	FromState      string    `json:"from_state"`
	ToState        string    `json:"to_state"`
	OccurredAtUtc  time.Time `json:"occurred_at_utc"`
}

func FromEvents(events []entities.StateTransitionEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, EventResponse{
			OrganizationID: ev.OrganizationID,
			EntityType:     string(ev.EntityType),
			EntityID:       ev.EntityID,
			FromState:      ev.FromState,
			ToState:        ev.ToState,
			OccurredAtUtc:  ev.OccurredAtUtc,
		})
	}
	return out
}

// TransitionResponse wraps an entity with the events its transition emitted.
// Events is empty for an idempotent no-op.
type TransitionResponse[T any] struct {
	Data   T               `json:"data"`
	Events []EventResponse `json:"events"`
}

func WithEvents[T any](data T, events []entities.StateTransitionEvent) TransitionResponse[T] {
	return TransitionResponse[T]{Data: data, Events: FromEvents(events)}
}

type TaxLineResponse struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Rate         string    `json:"rate"`
	LeadID       string    `json:"lead_id,omitempty"`
	CompanyID    string    `json:"company_id,omitempty"`
	CreatedAtUtc time.Time `json:"created_at_utc"`
}

func fromTaxLines(lines []entities.TaxLine) []TaxLineResponse {
	out := make([]TaxLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, TaxLineResponse{
			ID:           l.ID,
			Label:        l.Label,
			Rate:         l.Rate.StringFixed(4),
			LeadID:       l.LeadID,
			CompanyID:    l.CompanyID,
			CreatedAtUtc: l.CreatedAtUtc,
		})
	}
	return out
}

type LineItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	IsTaxLine   bool   `json:"is_tax_line"`
	TaxRate     string `json:"tax_rate"`
	LineTotal   string `json:"line_total"`
	SortOrder   int    `json:"sort_order"`
}

func fromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, li := range lines {
		out = append(out, LineItemResponse{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			UnitPrice:   li.UnitPrice.StringFixed(2),
			IsTaxLine:   li.IsTaxLine,
			TaxRate:     li.TaxRate.StringFixed(4),
			LineTotal:   li.LineTotal().StringFixed(2),
			SortOrder:   li.SortOrder,
		})
	}
	return out
}
