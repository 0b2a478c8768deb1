package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OverdueInvoiceDynamoFinder lists Issued invoices past their due date
// across all tenants through the status-due_at-index GSI.
type OverdueInvoiceDynamoFinder struct {
	ddb   DynamoAPI
	table string
}

var _ interfaces.IOverdueFinder = (*OverdueInvoiceDynamoFinder)(nil)

func NewOverdueInvoiceDynamoFinder(ddb DynamoAPI, invoicesTable string) *OverdueInvoiceDynamoFinder {
	return &OverdueInvoiceDynamoFinder{ddb: ddb, table: invoicesTable}
}

type overdueKey struct {
	OrganizationID string `dynamodbav:"organization_id"`
	ID             string `dynamodbav:"id"`
}

func (f *OverdueInvoiceDynamoFinder) ListOverdue(ctx context.Context, now time.Time) ([]interfaces.OverdueCandidate, error) {
	var out []interfaces.OverdueCandidate
	var startKey map[string]types.AttributeValue
	for {
		page, err := f.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(f.table),
			IndexName:              aws.String(invoicesStatusDueAtIndex),
			KeyConditionExpression: aws.String("#status = :status AND #due_at < :now"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
				"#due_at": "due_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusIssued)},
				":now":    &types.AttributeValueMemberS{Value: formatTime(now)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query overdue invoices: %w", err)
		}
		for _, raw := range page.Items {
			var k overdueKey
			if err := attributevalue.UnmarshalMap(raw, &k); err != nil {
				return nil, err
			}
			tenant, err := entities.NewTenant(k.OrganizationID)
			if err != nil {
				log.Printf("[invoice][dynamodb] skipping overdue candidate without org id=%s", k.ID)
				continue
			}
			out = append(out, interfaces.OverdueCandidate{Tenant: tenant, InvoiceID: k.ID})
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}
