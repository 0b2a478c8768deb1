package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps rows keyed by table and (organization_id, id) and
// records every request it receives.
type fakeDynamo struct {
	rows map[string]map[string]map[string]types.AttributeValue

	transactErr error
	transacts   []*dynamodb.TransactWriteItemsInput
	puts        []*dynamodb.PutItemInput
	queries     []*dynamodb.QueryInput
	queryPages  []*dynamodb.QueryOutput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{rows: make(map[string]map[string]map[string]types.AttributeValue)}
}

func rowKey(av map[string]types.AttributeValue) string {
	org, _ := av[attrOrganizationID].(*types.AttributeValueMemberS)
	id, _ := av[attrID].(*types.AttributeValueMemberS)
	if org == nil || id == nil {
		return ""
	}
	return org.Value + "|" + id.Value
}

func (f *fakeDynamo) store(table string, item map[string]types.AttributeValue) {
	if f.rows[table] == nil {
		f.rows[table] = make(map[string]map[string]types.AttributeValue)
	}
	f.rows[table][rowKey(item)] = item
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: f.rows[aws.ToString(in.TableName)][rowKey(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if len(f.queryPages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return page, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, item := range in.TransactItems {
		f.store(aws.ToString(item.Put.TableName), item.Put.Item)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
