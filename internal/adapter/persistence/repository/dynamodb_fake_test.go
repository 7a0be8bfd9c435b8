package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// backend makes. Conditions are only supported on the table key, which is
// all the backend ever checks. Filters only support "#a = :v".
//
// With indexLag set, reads through a secondary index see nothing, the way a
// GSI behaves right after a write.
type fakeDynamo struct {
	mu       sync.Mutex
	keys     map[string]string
	tables   map[string]map[string]map[string]types.AttributeValue
	transact []*dynamodb.TransactWriteItemsInput
	created  []*dynamodb.CreateTableInput
	scans    []*dynamodb.ScanInput
	indexLag bool
	failNext error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys:   map[string]string{},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamo) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) string {
	v, _ := item[f.keys[table]].(*types.AttributeValueMemberS)
	if v == nil {
		return ""
	}
	return v.Value
}

func (f *fakeDynamo) table(name string) (map[string]map[string]types.AttributeValue, error) {
	t, ok := f.tables[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table " + name)}
	}
	return t, nil
}

// conditionHolds evaluates attribute_exists/attribute_not_exists on the key.
func conditionHolds(cond *string, exists bool) bool {
	switch {
	case cond == nil:
		return true
	case strings.HasPrefix(*cond, "attribute_not_exists"):
		return !exists
	case strings.HasPrefix(*cond, "attribute_exists"):
		return exists
	}
	return true
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}
	key := f.keyOf(aws.ToString(in.TableName), in.Item)
	_, exists := t[key]
	if !conditionHolds(in.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
	}
	t[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}
	delete(t, f.keyOf(aws.ToString(in.TableName), in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, in)
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	if in.IndexName != nil && aws.ToBool(in.ConsistentRead) {
		return nil, errors.New("ValidationException: consistent reads are not supported on global secondary indexes")
	}
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}

	out := &dynamodb.ScanOutput{}
	if in.IndexName != nil && f.indexLag {
		return out, nil
	}
	for _, it := range t {
		if in.Limit != nil && int32(len(out.Items)) >= *in.Limit {
			break
		}
		if !matchesFilter(in, it) {
			continue
		}
		if in.ProjectionExpression != nil {
			it = map[string]types.AttributeValue{"id": it["id"]}
		}
		out.Items = append(out.Items, it)
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

func matchesFilter(in *dynamodb.ScanInput, item map[string]types.AttributeValue) bool {
	if in.FilterExpression == nil {
		return true
	}
	name, value, _ := strings.Cut(aws.ToString(in.FilterExpression), " = ")
	want, _ := in.ExpressionAttributeValues[value].(*types.AttributeValueMemberS)
	got, _ := item[in.ExpressionAttributeNames[name]].(*types.AttributeValueMemberS)
	return want != nil && got != nil && want.Value == got.Value
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transact = append(f.transact, in)
	if err := f.takeFailure(); err != nil {
		return nil, err
	}

	// validate every condition first so a failure writes nothing
	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, ti := range in.TransactItems {
		var table string
		var key string
		var cond *string
		switch {
		case ti.Put != nil:
			table, cond = aws.ToString(ti.Put.TableName), ti.Put.ConditionExpression
			key = f.keyOf(table, ti.Put.Item)
		case ti.Update != nil:
			table, cond = aws.ToString(ti.Update.TableName), ti.Update.ConditionExpression
			key = f.keyOf(table, ti.Update.Key)
		case ti.Delete != nil:
			table, cond = aws.ToString(ti.Delete.TableName), ti.Delete.ConditionExpression
			key = f.keyOf(table, ti.Delete.Key)
		}
		t, err := f.table(table)
		if err != nil {
			return nil, err
		}
		_, exists := t[key]
		reasons[i].Code = aws.String("None")
		if !conditionHolds(cond, exists) {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, ti := range in.TransactItems {
		switch {
		case ti.Put != nil:
			table := aws.ToString(ti.Put.TableName)
			f.tables[table][f.keyOf(table, ti.Put.Item)] = ti.Put.Item
		case ti.Update != nil:
			table := aws.ToString(ti.Update.TableName)
			item := f.tables[table][f.keyOf(table, ti.Update.Key)]
			// only "SET #a = :a" is used
			expr := strings.TrimPrefix(aws.ToString(ti.Update.UpdateExpression), "SET ")
			name, value, _ := strings.Cut(expr, " = ")
			item[ti.Update.ExpressionAttributeNames[name]] = ti.Update.ExpressionAttributeValues[value]
		case ti.Delete != nil:
			table := aws.ToString(ti.Delete.TableName)
			delete(f.tables[table], f.keyOf(table, ti.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if _, err := f.table(name); err != nil {
		return nil, err
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if _, ok := f.tables[name]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	f.created = append(f.created, in)
	f.keys[name] = aws.ToString(in.KeySchema[0].AttributeName)
	f.tables[name] = map[string]map[string]types.AttributeValue{}
	return &dynamodb.CreateTableOutput{}, nil
}

var errFake = errors.New("fake dynamodb failure")
