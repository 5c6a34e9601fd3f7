package repository

import (
	"context"
	"sort"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetVersionsTableName = "budget_versions"
	budgetVersionsJobIDIndex       = "job_id-index"
)

type budgetVersionItem struct {
	ID           string `dynamodbav:"id"`
	JobID        string `dynamodbav:"job_id"`
	Version      int    `dynamodbav:"version"`
	Status       string `dynamodbav:"status"`
	Subtotal     string `dynamodbav:"subtotal"`
	Discount     string `dynamodbav:"discount"`
	ExtraCharges string `dynamodbav:"extra_charges"`
	Tax          string `dynamodbav:"tax"`
	Total        string `dynamodbav:"total"`
	RejectReason string `dynamodbav:"reject_reason,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// BudgetVersionDynamoRepository persists BudgetVersion entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type BudgetVersionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetVersionRepository = (*BudgetVersionDynamoRepository)(nil)

func NewBudgetVersionDynamoRepository(ddb *dynamodb.Client) *BudgetVersionDynamoRepository {
	return &BudgetVersionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGET_VERSIONS_TABLE", defaultBudgetVersionsTableName),
	}
}

func (r *BudgetVersionDynamoRepository) Create(ctx context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) {
	it := toBudgetVersionItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetVersion{}, err
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
		return entities.BudgetVersion{}, err
	}
	return v, nil
}

func (r *BudgetVersionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetVersion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetVersion{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetVersion{}, nil
	}

	var it budgetVersionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetVersion{}, err
	}
	return fromBudgetVersionItem(it), nil
}

func (r *BudgetVersionDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.BudgetVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetVersionsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BudgetVersion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetVersionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetVersionItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Version < items[j].Version })
	return items, nil
}

func (r *BudgetVersionDynamoRepository) Save(ctx context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) {
	it := toBudgetVersionItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetVersion{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BudgetVersion{}, err
	}
	return v, nil
}

func (r *BudgetVersionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBudgetVersionItem(v entities.BudgetVersion) budgetVersionItem {
	return budgetVersionItem{
		ID:           v.ID,
		JobID:        v.JobID,
		Version:      v.Version,
		Status:       string(v.Status),
		Subtotal:     decToString(v.Subtotal),
		Discount:     decToString(v.Discount),
		ExtraCharges: decToString(v.ExtraCharges),
		Tax:          decToString(v.Tax),
		Total:        decToString(v.Total),
		RejectReason: v.RejectReason,
		CreatedAt:    timeToString(v.CreatedAt),
		UpdatedAt:    timeToString(v.UpdatedAt),
	}
}

func fromBudgetVersionItem(it budgetVersionItem) entities.BudgetVersion {
	return entities.BudgetVersion{
		ID:           it.ID,
		JobID:        it.JobID,
		Version:      it.Version,
		Status:       entities.BudgetStatus(it.Status),
		Subtotal:     decFromString(it.Subtotal),
		Discount:     decFromString(it.Discount),
		ExtraCharges: decFromString(it.ExtraCharges),
		Tax:          decFromString(it.Tax),
		Total:        decFromString(it.Total),
		RejectReason: it.RejectReason,
		CreatedAt:    timeFromString(it.CreatedAt),
		UpdatedAt:    timeFromString(it.UpdatedAt),
	}
}
