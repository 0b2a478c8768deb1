package repository

import (
	"context"
	"fmt"
	"log"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUnitOfWork runs tenant-scoped units of work against DynamoDB.
//
// Reads are strongly consistent GetItem calls keyed by (organization_id, id).
// Saves are staged in memory and flushed by one TransactWriteItems call whose
// puts are conditioned on the version each entity was loaded with.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables}
}

func (u *DynamoUnitOfWork) Do(ctx context.Context, tenant entities.Tenant, fn func(ctx context.Context, tx interfaces.ITx) error) error {
	if tenant.IsZero() {
		return apperr.Validation("tenant_required", "organization id is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t := newDynamoTx(u, tenant)
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.commit(ctx)
}

type dynamoTx struct {
	uow    *DynamoUnitOfWork
	tenant entities.Tenant

	leads     *itemRepo[entities.Lead]
	companies *itemRepo[entities.Company]
	estimates *itemRepo[entities.Estimate]
	jobs      *itemRepo[entities.Job]
	invoices  *itemRepo[entities.Invoice]
	payments  *invoicePaymentRepo
}

var _ interfaces.ITx = (*dynamoTx)(nil)

func newDynamoTx(u *DynamoUnitOfWork, tenant entities.Tenant) *dynamoTx {
	t := &dynamoTx{uow: u, tenant: tenant}
	t.leads = newItemRepo(t, u.tables.Leads, leadCodec)
	t.companies = newItemRepo(t, u.tables.Companies, companyCodec)
	t.estimates = newItemRepo(t, u.tables.Estimates, estimateCodec)
	t.jobs = newItemRepo(t, u.tables.Jobs, jobCodec)
	t.invoices = newItemRepo(t, u.tables.Invoices, invoiceCodec)
	t.payments = &invoicePaymentRepo{tx: t, table: u.tables.Payments}
	return t
}

func (t *dynamoTx) Tenant() entities.Tenant                        { return t.tenant }
func (t *dynamoTx) Leads() interfaces.ILeadRepository              { return t.leads }
func (t *dynamoTx) Companies() interfaces.ICompanyRepository       { return t.companies }
func (t *dynamoTx) Estimates() interfaces.IEstimateRepository      { return t.estimates }
func (t *dynamoTx) Jobs() interfaces.IJobRepository                { return t.jobs }
func (t *dynamoTx) Invoices() interfaces.IInvoiceRepository        { return t.invoices }
func (t *dynamoTx) Payments() interfaces.IInvoicePaymentRepository { return t.payments }

func (t *dynamoTx) commit(ctx context.Context) error {
	var writes []stagedWrite
	for _, w := range []interface {
		writes() ([]stagedWrite, error)
	}{t.leads, t.companies, t.estimates, t.jobs, t.invoices, t.payments} {
		ws, err := w.writes()
		if err != nil {
			return err
		}
		writes = append(writes, ws...)
	}
	if len(writes) == 0 {
		return nil
	}
	if len(writes) > maxTransactItems {
		return fmt.Errorf("unit of work stages %d writes, limit is %d", len(writes), maxTransactItems)
	}

	items := make([]types.TransactWriteItem, 0, len(writes))
	for _, w := range writes {
		items = append(items, types.TransactWriteItem{Put: w.put})
	}
	org := t.tenant.OrganizationID()
	if _, err := t.uow.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		err = mapCommitError(org, writes, err)
		if apperr.KindOf(err) == "" {
			log.Printf("[pipeline][dynamodb] commit failed org=%s writes=%d err=%v", org, len(writes), err)
		}
		return err
	}
	for _, w := range writes {
		if w.committed != nil {
			w.committed()
		}
	}
	return nil
}

// codec describes how one entity kind maps to its table items.
type codec[T any] struct {
	kind    entities.EntityType
	id      func(e *T) string
	org     func(e *T) *string
	version func(e *T) *int64
	clone   func(e *T) *T
	encode  func(e *T) (any, error)
	decode  func(av map[string]types.AttributeValue) (*T, error)
}

var leadCodec = codec[entities.Lead]{
	kind:    entities.EntityTypeLead,
	id:      func(e *entities.Lead) string { return e.ID },
	org:     func(e *entities.Lead) *string { return &e.OrganizationID },
	version: func(e *entities.Lead) *int64 { return &e.Version },
	clone:   (*entities.Lead).Clone,
	encode:  func(e *entities.Lead) (any, error) { return toLeadItem(e) },
	decode: func(av map[string]types.AttributeValue) (*entities.Lead, error) {
		var it leadItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		return fromLeadItem(it)
	},
}

var companyCodec = codec[entities.Company]{
	kind:    entities.EntityTypeCompany,
	id:      func(e *entities.Company) string { return e.ID },
	org:     func(e *entities.Company) *string { return &e.OrganizationID },
	version: func(e *entities.Company) *int64 { return &e.Version },
	clone:   (*entities.Company).Clone,
	encode:  func(e *entities.Company) (any, error) { return toCompanyItem(e) },
	decode: func(av map[string]types.AttributeValue) (*entities.Company, error) {
		var it companyItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		return fromCompanyItem(it)
	},
}

var estimateCodec = codec[entities.Estimate]{
	kind:    entities.EntityTypeEstimate,
	id:      func(e *entities.Estimate) string { return e.ID },
	org:     func(e *entities.Estimate) *string { return &e.OrganizationID },
	version: func(e *entities.Estimate) *int64 { return &e.Version },
	clone:   (*entities.Estimate).Clone,
	encode:  func(e *entities.Estimate) (any, error) { return toEstimateItem(e) },
	decode: func(av map[string]types.AttributeValue) (*entities.Estimate, error) {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		return fromEstimateItem(it)
	},
}

var jobCodec = codec[entities.Job]{
	kind:    entities.EntityTypeJob,
	id:      func(e *entities.Job) string { return e.ID },
	org:     func(e *entities.Job) *string { return &e.OrganizationID },
	version: func(e *entities.Job) *int64 { return &e.Version },
	clone:   (*entities.Job).Clone,
	encode:  func(e *entities.Job) (any, error) { return toJobItem(e) },
	decode: func(av map[string]types.AttributeValue) (*entities.Job, error) {
		var it jobItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		return fromJobItem(it)
	},
}

var invoiceCodec = codec[entities.Invoice]{
	kind:    entities.EntityTypeInvoice,
	id:      func(e *entities.Invoice) string { return e.ID },
	org:     func(e *entities.Invoice) *string { return &e.OrganizationID },
	version: func(e *entities.Invoice) *int64 { return &e.Version },
	clone:   (*entities.Invoice).Clone,
	encode:  func(e *entities.Invoice) (any, error) { return toInvoiceItem(e) },
	decode: func(av map[string]types.AttributeValue) (*entities.Invoice, error) {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		return fromInvoiceItem(it)
	},
}

// itemRepo stages versioned puts for one entity kind.
type itemRepo[T any] struct {
	tx     *dynamoTx
	table  string
	codec  codec[T]
	staged map[string]*T
	order  []string
}

func newItemRepo[T any](t *dynamoTx, table string, c codec[T]) *itemRepo[T] {
	return &itemRepo[T]{tx: t, table: table, codec: c, staged: make(map[string]*T)}
}

func (r *itemRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	if e, ok := r.staged[id]; ok {
		return r.codec.clone(e), nil
	}

	out, err := r.tx.uow.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            itemKey(r.tx.tenant.OrganizationID(), id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.codec.kind, id, err)
	}
	if len(out.Item) == 0 {
		return nil, apperr.NotFound(string(r.codec.kind), id)
	}
	e, err := r.codec.decode(out.Item)
	if err != nil {
		return nil, err
	}
	if !r.tx.tenant.Owns(*r.codec.org(e)) {
		return nil, apperr.NotFound(string(r.codec.kind), id)
	}
	return e, nil
}

func (r *itemRepo[T]) Save(_ context.Context, e *T) error {
	if e == nil {
		return apperr.Validation("entity_required", "%s is required", r.codec.kind)
	}
	id := r.codec.id(e)
	if id == "" {
		return apperr.Validation("id_required", "%s id is required", r.codec.kind)
	}
	org := r.codec.org(e)
	if *org == "" {
		*org = r.tx.tenant.OrganizationID()
	} else if !r.tx.tenant.Owns(*org) {
		return apperr.NotFound(string(r.codec.kind), id)
	}

	if _, ok := r.staged[id]; !ok {
		r.order = append(r.order, id)
	}
	r.staged[id] = e
	return nil
}

// writes encodes every staged entity at its next version. The caller's
// entity is only bumped once the transaction committed.
func (r *itemRepo[T]) writes() ([]stagedWrite, error) {
	out := make([]stagedWrite, 0, len(r.order))
	for _, id := range r.order {
		e := r.staged[id]
		want := *r.codec.version(e)

		next := r.codec.clone(e)
		*r.codec.version(next) = want + 1
		it, err := r.codec.encode(next)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", r.codec.kind, id, err)
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s: %w", r.codec.kind, id, err)
		}

		cond, names, values := versionCondition(want)
		out = append(out, stagedWrite{
			kind: r.codec.kind,
			id:   id,
			put: &types.Put{
				TableName:                 aws.String(r.table),
				Item:                      av,
				ConditionExpression:       aws.String(cond),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
			committed: func() { *r.codec.version(e) = want + 1 },
		})
	}
	return out, nil
}

// invoicePaymentRepo is append-only; payments are never rewritten.
type invoicePaymentRepo struct {
	tx     *dynamoTx
	table  string
	staged []*entities.InvoicePayment
}

var _ interfaces.IInvoicePaymentRepository = (*invoicePaymentRepo)(nil)

func (r *invoicePaymentRepo) Create(_ context.Context, p *entities.InvoicePayment) error {
	if p == nil || p.ID == "" {
		return apperr.Validation("id_required", "invoice payment id is required")
	}
	if p.OrganizationID == "" {
		p.OrganizationID = r.tx.tenant.OrganizationID()
	} else if !r.tx.tenant.Owns(p.OrganizationID) {
		return apperr.NotFound(string(entities.EntityTypePayment), p.ID)
	}
	r.staged = append(r.staged, p.Clone())
	return nil
}

func (r *invoicePaymentRepo) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	out := make([]entities.InvoicePayment, 0)
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.tx.uow.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.table),
			IndexName:              aws.String(paymentsInvoiceIDIndex),
			KeyConditionExpression: aws.String("invoice_id = :iid"),
			FilterExpression:       aws.String("organization_id = :org"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":iid": &types.AttributeValueMemberS{Value: invoiceID},
				":org": &types.AttributeValueMemberS{Value: r.tx.tenant.OrganizationID()},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("list payments invoice=%s: %w", invoiceID, err)
		}
		for _, raw := range page.Items {
			var it invoicePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromInvoicePaymentItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	for _, p := range r.staged {
		if p.InvoiceID == invoiceID {
			out = append(out, *p.Clone())
		}
	}
	return out, nil
}

func (r *invoicePaymentRepo) writes() ([]stagedWrite, error) {
	out := make([]stagedWrite, 0, len(r.staged))
	for _, p := range r.staged {
		av, err := attributevalue.MarshalMap(toInvoicePaymentItem(p))
		if err != nil {
			return nil, fmt.Errorf("marshal invoice payment %s: %w", p.ID, err)
		}
		cond, names, _ := versionCondition(0)
		out = append(out, stagedWrite{
			kind: entities.EntityTypePayment,
			id:   p.ID,
			put: &types.Put{
				TableName:                aws.String(r.table),
				Item:                     av,
				ConditionExpression:      aws.String(cond),
				ExpressionAttributeNames: names,
			},
		})
	}
	return out, nil
}
