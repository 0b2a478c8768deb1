package repository

import (
	"context"
	"fmt"

	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type transitionEventItem struct {
	OrganizationID string `dynamodbav:"organization_id"`
	SK             string `dynamodbav:"sk"`
	EntityType     string `dynamodbav:"entity_type"`
	EntityID       string `dynamodbav:"entity_id"`
	FromState      string `dynamodbav:"from_state"`
	ToState        string `dynamodbav:"to_state"`
	OccurredAt     string `dynamodbav:"occurred_at"`
}

// TransitionEventDynamoRepository appends published transitions to an audit
// table, newest last within each organization.
//
// Table requirements:
//   - PK: organization_id (string)
//   - SK: sk (string, "<occurred_at>#<entity_type>#<entity_id>")
type TransitionEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEventSink = (*TransitionEventDynamoRepository)(nil)

func NewTransitionEventDynamoRepository(ddb DynamoAPI, tableName string) *TransitionEventDynamoRepository {
	return &TransitionEventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransitionEventDynamoRepository) Publish(ctx context.Context, events []entities.StateTransitionEvent) error {
	for _, ev := range events {
		occurredAt := formatTime(ev.OccurredAtUtc)
		av, err := attributevalue.MarshalMap(transitionEventItem{
			OrganizationID: ev.OrganizationID,
			SK:             occurredAt + "#" + string(ev.EntityType) + "#" + ev.EntityID,
			EntityType:     string(ev.EntityType),
			EntityID:       ev.EntityID,
			FromState:      ev.FromState,
			ToState:        ev.ToState,
			OccurredAt:     occurredAt,
		})
		if err != nil {
			return err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#sk)"),
			ExpressionAttributeNames: map[string]string{
				"#sk": "sk",
			},
		})
		if err != nil {
			return fmt.Errorf("append %s %s event: %w", ev.EntityType, ev.EntityID, err)
		}
	}
	return nil
}
