package repository

import (
	"context"
	"testing"

	"contractor_pipeline/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

func TestTransitionEventDynamoRepository_Publish(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewTransitionEventDynamoRepository(ddb, "transition_events")

	err := repo.Publish(context.Background(), []entities.StateTransitionEvent{
		{OrganizationID: "org-1", EntityType: entities.EntityTypeEstimate, EntityID: "est-1", FromState: "sent", ToState: "accepted", OccurredAtUtc: t0},
		{OrganizationID: "org-1", EntityType: entities.EntityTypeLead, EntityID: "lead-1", FromState: "new", ToState: "converted", OccurredAtUtc: t0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.puts) != 2 {
		t.Fatalf("expected 2 puts, got %d", len(ddb.puts))
	}

	var it transitionEventItem
	if err := attributevalue.UnmarshalMap(ddb.puts[0].Item, &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.SK != "2026-04-01T09:00:00.000000000Z#estimate#est-1" || it.FromState != "sent" || it.ToState != "accepted" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if aws.ToString(ddb.puts[0].TableName) != "transition_events" {
		t.Fatalf("unexpected table: %s", aws.ToString(ddb.puts[0].TableName))
	}
}
