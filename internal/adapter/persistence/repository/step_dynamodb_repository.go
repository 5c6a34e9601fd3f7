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
	defaultStepsTableName = "steps"
	stepsJobIDIndex       = "job_id-index"
)

type stepItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	StepNumber     int    `dynamodbav:"step_number"`
	Name           string `dynamodbav:"name"`
	Cost           string `dynamodbav:"cost"`
	Paid           string `dynamodbav:"paid"`
	Balance        string `dynamodbav:"balance"`
	Status         string `dynamodbav:"status"`
	CompletionDate string `dynamodbav:"completion_date,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// StepDynamoRepository persists Step entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// ListByJobID sorts by step_number ascending after the query; the payment
// allocator depends on that order and GSI result order is not guaranteed.

type StepDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStepRepository = (*StepDynamoRepository)(nil)

func NewStepDynamoRepository(ddb *dynamodb.Client) *StepDynamoRepository {
	return &StepDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STEPS_TABLE", defaultStepsTableName),
	}
}

func (r *StepDynamoRepository) Create(ctx context.Context, s entities.Step) (entities.Step, error) {
	it := toStepItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Step{}, err
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
		return entities.Step{}, err
	}
	return s, nil
}

func (r *StepDynamoRepository) GetByID(ctx context.Context, id string) (entities.Step, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Step{}, err
	}
	if len(out.Item) == 0 {
		return entities.Step{}, nil
	}

	var it stepItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Step{}, err
	}
	return fromStepItem(it), nil
}

func (r *StepDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Step, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stepsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Step, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stepItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStepItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StepNumber < items[j].StepNumber })
	return items, nil
}

func (r *StepDynamoRepository) Save(ctx context.Context, s entities.Step) (entities.Step, error) {
	it := toStepItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Step{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Step{}, err
	}
	return s, nil
}

func (r *StepDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toStepItem(s entities.Step) stepItem {
	return stepItem{
		ID:             s.ID,
		JobID:          s.JobID,
		StepNumber:     s.StepNumber,
		Name:           s.Name,
		Cost:           decToString(s.Cost),
		Paid:           decToString(s.Paid),
		Balance:        decToString(s.Balance),
		Status:         string(s.Status),
		CompletionDate: timePtrToString(s.CompletionDate),
		CreatedAt:      timeToString(s.CreatedAt),
		UpdatedAt:      timeToString(s.UpdatedAt),
	}
}

func fromStepItem(it stepItem) entities.Step {
	return entities.Step{
		ID:             it.ID,
		JobID:          it.JobID,
		StepNumber:     it.StepNumber,
		Name:           it.Name,
		Cost:           decFromString(it.Cost),
		Paid:           decFromString(it.Paid),
		Balance:        decFromString(it.Balance),
		Status:         entities.StepStatus(it.Status),
		CompletionDate: timePtrFromString(it.CompletionDate),
		CreatedAt:      timeFromString(it.CreatedAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}
