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

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID             string `dynamodbav:"id"`
	ExternalID     string `dynamodbav:"external_id"`
	AccountID      string `dynamodbav:"account_id"`
	Status         string `dynamodbav:"status"`
	PipelineStatus string `dynamodbav:"pipeline_status"`
	Division       string `dynamodbav:"division"`
	EstimateType   string `dynamodbav:"estimate_type"`
	PriceWithTax   string `dynamodbav:"price_with_tax"`
	PriceExTax     string `dynamodbav:"price_ex_tax"`
	EstimateDate   string `dynamodbav:"estimate_date"`
	CloseDate      string `dynamodbav:"estimate_close_date"`
	ContractStart  string `dynamodbav:"contract_start"`
	ContractEnd    string `dynamodbav:"contract_end"`
	CreatedDate    string `dynamodbav:"created_date"`
	Archived       bool   `dynamodbav:"archived"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Report requests aggregate over the whole collection, so listing is a
// paginated Scan. The working sets an estimating tool produces (thousands of
// rows per fiscal year) stay comfortably inside scan limits.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *EstimateDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Estimate, error) {
	filter := aws.String("#account_id = :account_id")
	names := map[string]string{"#account_id": "account_id"}
	values := map[string]types.AttributeValue{
		":account_id": &types.AttributeValueMemberS{Value: accountID},
	}
	return r.scan(ctx, filter, names, values)
}

func (r *EstimateDynamoRepository) SetArchived(ctx context.Context, id string, archived bool) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #archived = :archived, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#archived":   "archived",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":archived":   &types.AttributeValueMemberBOOL{Value: archived},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Estimate, error) {
	var out []entities.Estimate
	var startKey map[string]types.AttributeValue

	for {
		resp, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateItem(it))
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return out, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:             e.ID,
		ExternalID:     e.ExternalID,
		AccountID:      e.AccountID,
		Status:         e.Status,
		PipelineStatus: e.PipelineStatus,
		Division:       e.Division,
		EstimateType:   e.EstimateType,
		PriceWithTax:   floatToString(e.PriceWithTax),
		PriceExTax:     floatToString(e.PriceExTax),
		EstimateDate:   e.EstimateDate,
		CloseDate:      e.CloseDate,
		ContractStart:  e.ContractStart,
		ContractEnd:    e.ContractEnd,
		CreatedDate:    e.CreatedDate,
		Archived:       e.Archived,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	priceWithTax, _ := strconv.ParseFloat(it.PriceWithTax, 64)
	priceExTax, _ := strconv.ParseFloat(it.PriceExTax, 64)
	return entities.Estimate{
		ID:             it.ID,
		ExternalID:     it.ExternalID,
		AccountID:      it.AccountID,
		Status:         it.Status,
		PipelineStatus: it.PipelineStatus,
		Division:       it.Division,
		EstimateType:   it.EstimateType,
		PriceWithTax:   priceWithTax,
		PriceExTax:     priceExTax,
		EstimateDate:   it.EstimateDate,
		CloseDate:      it.CloseDate,
		ContractStart:  it.ContractStart,
		ContractEnd:    it.ContractEnd,
		CreatedDate:    it.CreatedDate,
		Archived:       it.Archived,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
