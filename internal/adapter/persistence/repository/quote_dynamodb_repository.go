package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fightreel_quotes/internal/domain/entities"
	"fightreel_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// quoteItem keeps input and breakdown as JSON documents so decimal figures survive
// the round trip exactly. grand_total is duplicated at the top level for scans.
type quoteItem struct {
	ID         string `dynamodbav:"id"`
	ClientName string `dynamodbav:"client_name"`
	Status     string `dynamodbav:"status"`
	GrandTotal string `dynamodbav:"grand_total"`
	Input      string `dynamodbav:"input"`
	Breakdown  string `dynamodbav:"breakdown"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Item)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *QuoteDynamoRepository) UpdatePricing(ctx context.Context, id string, input entities.QuoteInput, breakdown entities.QuoteBreakdown) (entities.Quote, error) {
	return r.update(ctx, id, "#status = :pending", func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		in, err := json.Marshal(input)
		if err != nil {
			return "", nil, nil, err
		}
		b, err := json.Marshal(breakdown)
		if err != nil {
			return "", nil, nil, err
		}
		expr := "SET #input = :input, #breakdown = :breakdown, #grand_total = :grand_total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":input":       &types.AttributeValueMemberS{Value: string(in)},
			":breakdown":   &types.AttributeValueMemberS{Value: string(b)},
			":grand_total": &types.AttributeValueMemberS{Value: breakdown.GrandTotal.String()},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#input":       "input",
			"#breakdown":   "breakdown",
			"#grand_total": "grand_total",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.Quote, error) {
	updateExpr, values, names, err := build(formatTime(r.now()))
	if err != nil {
		return entities.Quote{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Attributes)
}

func unmarshalQuote(av map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	in, err := json.Marshal(q.Input)
	if err != nil {
		return quoteItem{}, fmt.Errorf("encode quote input: %w", err)
	}
	b, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteItem{}, fmt.Errorf("encode quote breakdown: %w", err)
	}
	return quoteItem{
		ID:         q.ID,
		ClientName: q.ClientName,
		Status:     string(q.Status),
		GrandTotal: q.Breakdown.GrandTotal.String(),
		Input:      string(in),
		Breakdown:  string(b),
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	q := entities.Quote{
		ID:         it.ID,
		ClientName: it.ClientName,
		Status:     entities.QuoteStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	if it.Input != "" {
		if err := json.Unmarshal([]byte(it.Input), &q.Input); err != nil {
			return entities.Quote{}, fmt.Errorf("decode quote %s input: %w", it.ID, err)
		}
	}
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &q.Breakdown); err != nil {
			return entities.Quote{}, fmt.Errorf("decode quote %s breakdown: %w", it.ID, err)
		}
	}
	return q, nil
}
