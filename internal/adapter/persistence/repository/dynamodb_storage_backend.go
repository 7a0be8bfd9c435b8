package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	emailsTableName = "user_emails"

	// DynamoDB rejects transactions above this many actions.
	maxTransactItems = 100
)

// DynamoDBAPI is the subset of *dynamodb.Client the backend relies on.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type DynamoOptions struct {
	TablePrefix string
	Seed        bool
	// TableWaitTimeout bounds how long Initialize waits for a created table
	// to become ACTIVE. Zero skips the wait.
	TableWaitTimeout time.Duration
}

// DynamoStorageBackend persists each collection in its own table.
//
// Table requirements (created by Initialize when missing):
//   - PK: id (string), one table per collection
//   - user_emails PK: email, reserves addresses for CreateAccount

type DynamoStorageBackend struct {
	ddb  DynamoDBAPI
	opts DynamoOptions
	log  *zap.Logger
}

var (
	_ interfaces.IStorageBackend = (*DynamoStorageBackend)(nil)
	_ interfaces.IAccountStore   = (*DynamoStorageBackend)(nil)
)

func NewDynamoStorageBackend(ddb DynamoDBAPI, opts DynamoOptions, log *zap.Logger) *DynamoStorageBackend {
	return &DynamoStorageBackend{ddb: ddb, opts: opts, log: log}
}

func (b *DynamoStorageBackend) table(c entities.Collection) string {
	return b.opts.TablePrefix + string(c)
}

func (b *DynamoStorageBackend) emailsTable() string {
	return b.opts.TablePrefix + emailsTableName
}

// Initialize makes sure every table exists and, when seeding is enabled,
// fills empty collections with the default dataset.
func (b *DynamoStorageBackend) Initialize(ctx context.Context) error {
	for _, c := range entities.AllCollections {
		if err := b.ensureTable(ctx, b.table(c), "id"); err != nil {
			return err
		}
	}
	if err := b.ensureTable(ctx, b.emailsTable(), "email"); err != nil {
		return err
	}

	if !b.opts.Seed {
		return nil
	}
	defaults := entities.DefaultDatabase()
	for _, c := range entities.AllCollections {
		if err := b.seedCollection(ctx, c, defaults); err != nil {
			return err
		}
	}
	return nil
}

func (b *DynamoStorageBackend) ensureTable(ctx context.Context, name, key string) error {
	_, err := b.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("describe table %s: %w", name, err)
	}

	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
	if _, err := b.ddb.CreateTable(ctx, in); err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	b.log.Info("dynamodb table created", zap.String("table", name))

	if b.opts.TableWaitTimeout > 0 {
		waiter := dynamodb.NewTableExistsWaiter(b.ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, b.opts.TableWaitTimeout); err != nil {
			return fmt.Errorf("wait table %s: %w", name, err)
		}
	}
	return nil
}

func (b *DynamoStorageBackend) seedCollection(ctx context.Context, c entities.Collection, defaults entities.Database) error {
	out, err := b.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(b.table(c)),
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("check seed of %s: %w", c, err)
	}
	if out.Count > 0 {
		return nil
	}

	records := recordsOf(defaults, c)
	for _, r := range records {
		av, err := marshalRecord(r)
		if err != nil {
			return err
		}
		if _, err := b.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(b.table(c)), Item: av}); err != nil {
			return fmt.Errorf("seed %s: %w", c, err)
		}
		if u, ok := r.(entities.User); ok {
			if err := b.putEmail(ctx, u); err != nil {
				return err
			}
		}
	}
	b.log.Info("dynamodb collection seeded", zap.String("collection", string(c)), zap.Int("records", len(records)))
	return nil
}

func (b *DynamoStorageBackend) putEmail(ctx context.Context, u entities.User) error {
	av, err := marshalEmail(u)
	if err != nil {
		return err
	}
	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(b.emailsTable()), Item: av})
	return err
}

// FetchAll scans every table. Records come back ordered by id since scans
// have no stable order.
func (b *DynamoStorageBackend) FetchAll(ctx context.Context) (entities.Database, error) {
	var db entities.Database
	for _, c := range entities.AllCollections {
		items, err := b.scanAll(ctx, b.table(c))
		if err != nil {
			return entities.Database{}, fmt.Errorf("scan %s: %w", c, err)
		}
		if err := decodeInto(&db, c, items); err != nil {
			return entities.Database{}, fmt.Errorf("decode %s: %w", c, err)
		}
	}
	db.Normalize()
	sortByID(db.Users)
	sortByID(db.Platforms)
	sortByID(db.Parts)
	sortByID(db.Maintenances)
	sortByID(db.Schedules)
	sortByID(db.PartsExchanged)
	return db, nil
}

func (b *DynamoStorageBackend) scanAll(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(b.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// Add writes a new item. Records without an id get a generated one.
func (b *DynamoStorageBackend) Add(ctx context.Context, collection entities.Collection, record entities.Record) (entities.Record, error) {
	if err := checkCollection(collection, record); err != nil {
		return nil, err
	}
	if record.GetID() == "" {
		record = record.WithID(uuid.NewString())
	}

	av, err := marshalRecord(record)
	if err != nil {
		return nil, err
	}
	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(b.table(collection)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrDuplicateID, collection, record.GetID(), err)
		}
		return nil, err
	}
	return record, nil
}

// Update overwrites an existing item. A missing id is a no-op.
func (b *DynamoStorageBackend) Update(ctx context.Context, collection entities.Collection, id string, record entities.Record) error {
	if err := checkCollection(collection, record); err != nil {
		return err
	}
	av, err := marshalRecord(record.WithID(id))
	if err != nil {
		return err
	}
	_, err = b.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(b.table(collection)),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (b *DynamoStorageBackend) Delete(ctx context.Context, collection entities.Collection, id string) error {
	_, err := b.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(b.table(collection)),
		Key:       idKey(id),
	})
	return err
}

// RegisterMaintenance writes the maintenance, its exchanges and the new stock
// of each affected part in one transaction.
func (b *DynamoStorageBackend) RegisterMaintenance(ctx context.Context, m entities.Maintenance, exchanges []entities.PartExchanged, currentParts []entities.Part) error {
	items := make([]types.TransactWriteItem, 0, 1+2*len(exchanges))

	put, err := b.newItemPut(entities.CollectionMaintenances, m)
	if err != nil {
		return err
	}
	items = append(items, put)

	for _, pe := range exchanges {
		put, err := b.newItemPut(entities.CollectionPartsExchanged, pe)
		if err != nil {
			return err
		}
		items = append(items, put)
	}

	usages := entities.UsagesOf(exchanges)
	for _, p := range entities.AffectedParts(entities.DeductStock(currentParts, usages), usages) {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:                aws.String(b.table(entities.CollectionParts)),
			Key:                      idKey(p.ID),
			UpdateExpression:         aws.String("SET #stock = :stock"),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#stock": "stock", "#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":stock": &types.AttributeValueMemberN{Value: fmt.Sprint(p.Stock)},
			},
		}})
	}

	err = b.transact(ctx, items)
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) && putConflict(tce, 1+len(exchanges)) {
		return fmt.Errorf("%w: maintenance %s: %w", ErrDuplicateID, m.ID, err)
	}
	return err
}

// DeleteMaintenance removes the maintenance and every exchange pointing at
// it in one transaction.
func (b *DynamoStorageBackend) DeleteMaintenance(ctx context.Context, id string) error {
	children, err := b.exchangeIDsOf(ctx, id)
	if err != nil {
		return fmt.Errorf("list exchanges of %s: %w", id, err)
	}

	items := make([]types.TransactWriteItem, 0, 1+len(children))
	items = append(items, types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(b.table(entities.CollectionMaintenances)),
		Key:       idKey(id),
	}})
	for _, child := range children {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(b.table(entities.CollectionPartsExchanged)),
			Key:       idKey(child),
		}})
	}
	return b.transact(ctx, items)
}

// exchangeIDsOf must see exchanges written by a RegisterMaintenance that just
// returned, so it reads the base table with ConsistentRead.
func (b *DynamoStorageBackend) exchangeIDsOf(ctx context.Context, maintenanceID string) ([]string, error) {
	p := dynamodb.NewScanPaginator(b.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(b.table(entities.CollectionPartsExchanged)),
		ConsistentRead:       aws.Bool(true),
		FilterExpression:     aws.String("#mid = :mid"),
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#mid": "maintenance_id",
			"#id":  "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: maintenanceID},
		},
	})

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, it := range page.Items {
			if v, ok := it["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
		}
	}
	return ids, nil
}

// CreateAccount writes the user together with its email reservation, so a
// second account with the same address is refused atomically.
func (b *DynamoStorageBackend) CreateAccount(ctx context.Context, user entities.User) (entities.User, error) {
	if user.ID == "" {
		user.ID = "user-" + uuid.NewString()
	}

	put, err := b.newItemPut(entities.CollectionUsers, user)
	if err != nil {
		return entities.User{}, err
	}
	emailAV, err := marshalEmail(user)
	if err != nil {
		return entities.User{}, err
	}

	err = b.transact(ctx, []types.TransactWriteItem{
		put,
		{Put: &types.Put{
			TableName:           aws.String(b.emailsTable()),
			Item:                emailAV,
			ConditionExpression: aws.String("attribute_not_exists(#email)"),
			ExpressionAttributeNames: map[string]string{
				"#email": "email",
			},
		}},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalFailure(tce) {
			return entities.User{}, entities.ErrEmailAlreadyRegistered
		}
		return entities.User{}, err
	}
	return user, nil
}

func (b *DynamoStorageBackend) newItemPut(c entities.Collection, r entities.Record) (types.TransactWriteItem, error) {
	av, err := marshalRecord(r)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(b.table(c)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}}, nil
}

func (b *DynamoStorageBackend) transact(ctx context.Context, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return fmt.Errorf("%w: %d actions", ErrTransactionTooLarge, len(items))
	}
	_, err := b.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func hasConditionalFailure(tce *types.TransactionCanceledException) bool {
	for _, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// putConflict reports a failed condition among the first n actions, which
// are the conditional puts of new records.
func putConflict(tce *types.TransactionCanceledException, n int) bool {
	for i, r := range tce.CancellationReasons {
		if i < n && aws.ToString(r.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func marshalEmail(u entities.User) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(emailItem{Email: strings.ToLower(strings.TrimSpace(u.Email)), UserID: u.ID})
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func sortByID[T entities.Record](items []T) {
	slices.SortFunc(items, func(a, b T) int { return strings.Compare(a.GetID(), b.GetID()) })
}
