package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables names one DynamoDB table per entity kind.
//
// Table requirements:
//   - entity tables: PK organization_id (string), SK id (string)
//   - invoices GSI status-due_at-index: PK status, SK due_at
//   - payments GSI invoice_id-index: PK invoice_id
//   - events: PK organization_id, SK sk
type Tables struct {
	Leads     string
	Companies string
	Estimates string
	Jobs      string
	Invoices  string
	Payments  string
	Events    string
}

const (
	attrOrganizationID = "organization_id"
	attrID             = "id"
	attrVersion        = "version"

	invoicesStatusDueAtIndex = "status-due_at-index"
	paymentsInvoiceIDIndex   = "invoice_id-index"

	// maxTransactItems is the DynamoDB limit for one TransactWriteItems call.
	maxTransactItems = 100
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t.UTC(), nil
}

func parseTimePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// encodeJSON stores nested collections as one JSON string attribute.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON(s string, v any) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), v)
}

func itemKey(orgID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrOrganizationID: &types.AttributeValueMemberS{Value: orgID},
		attrID:             &types.AttributeValueMemberS{Value: id},
	}
}

// versionCondition guards a put: absent row for a create, the loaded
// version otherwise.
func versionCondition(want int64) (string, map[string]string, map[string]types.AttributeValue) {
	if want == 0 {
		return "attribute_not_exists(#id)", map[string]string{"#id": attrID}, nil
	}
	return "#version = :version",
		map[string]string{"#version": attrVersion},
		map[string]types.AttributeValue{":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", want)}}
}

// mapCommitError turns a cancelled transaction into an apperr Conflict.
func mapCommitError(orgID string, staged []stagedWrite, err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if reason.Code == nil || *reason.Code == "None" {
				continue
			}
			if i < len(staged) {
				w := staged[i]
				return apperr.Conflict(string(w.kind), w.id, "%s %s was modified concurrently (%s)", w.kind, w.id, *reason.Code)
			}
		}
		return apperr.Conflict("", "", "unit of work for org %s was cancelled: %v", orgID, err)
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) && len(staged) > 0 {
		return apperr.Conflict(string(staged[0].kind), staged[0].id, "%s %s was modified concurrently", staged[0].kind, staged[0].id)
	}
	var tcx *types.TransactionConflictException
	if errors.As(err, &tcx) {
		return apperr.Conflict("", "", "unit of work for org %s conflicted with another transaction", orgID)
	}
	return fmt.Errorf("dynamodb commit org=%s: %w", orgID, err)
}

// stagedWrite is one Put of a unit of work, with what to report on conflict
// and what to run once the commit succeeded.
type stagedWrite struct {
	kind      entities.EntityType
	id        string
	put       *types.Put
	committed func()
}
