package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

type accountItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	AnnualRevenue string `dynamodbav:"annual_revenue"`
	Segment       string `dynamodbav:"revenue_segment"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	it := toAccountItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Account{}, err
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
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) List(ctx context.Context) ([]entities.Account, error) {
	var out []entities.Account
	var startKey map[string]types.AttributeValue

	for {
		resp, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []accountItem
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAccountItem(it))
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return out, nil
}

func (r *AccountDynamoRepository) UpdateRevenueSegment(ctx context.Context, id string, annualRevenue float64, segment entities.RevenueSegment) (entities.Account, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #annual_revenue = :annual_revenue, #revenue_segment = :revenue_segment, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#annual_revenue":  "annual_revenue",
			"#revenue_segment": "revenue_segment",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":annual_revenue":  &types.AttributeValueMemberS{Value: floatToString(annualRevenue)},
			":revenue_segment": &types.AttributeValueMemberS{Value: string(segment)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:            a.ID,
		Name:          a.Name,
		AnnualRevenue: floatToString(a.AnnualRevenue),
		Segment:       string(a.Segment),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	revenue, _ := strconv.ParseFloat(it.AnnualRevenue, 64)
	return entities.Account{
		ID:            it.ID,
		Name:          it.Name,
		AnnualRevenue: revenue,
		Segment:       entities.RevenueSegment(it.Segment),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
