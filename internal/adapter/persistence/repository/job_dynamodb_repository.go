package repository

import (
	"context"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsClientIDIndex    = "client_id-index"
)

type jobItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	Title             string `dynamodbav:"title"`
	Description       string `dynamodbav:"description,omitempty"`
	BudgetInitial     string `dynamodbav:"budget_initial"`
	CostFinal         string `dynamodbav:"cost_final"`
	PaidTotal         string `dynamodbav:"paid_total"`
	BalanceDue        string `dynamodbav:"balance_due"`
	Status            string `dynamodbav:"status"`
	CompletionDate    string `dynamodbav:"completion_date,omitempty"`
	LastBudgetVersion int    `dynamodbav:"last_budget_version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// The GSI backs the reconciliation cascade, which reloads all of a client's
// jobs to recompute the aggregate debt.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobItem(it))
	}
	return items, nil
}

func (r *JobDynamoRepository) Save(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                j.ID,
		ClientID:          j.ClientID,
		Title:             j.Title,
		Description:       j.Description,
		BudgetInitial:     decToString(j.BudgetInitial),
		CostFinal:         decToString(j.CostFinal),
		PaidTotal:         decToString(j.PaidTotal),
		BalanceDue:        decToString(j.BalanceDue),
		Status:            string(j.Status),
		CompletionDate:    timePtrToString(j.CompletionDate),
		LastBudgetVersion: j.LastBudgetVersion,
		CreatedAt:         timeToString(j.CreatedAt),
		UpdatedAt:         timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                it.ID,
		ClientID:          it.ClientID,
		Title:             it.Title,
		Description:       it.Description,
		BudgetInitial:     decFromString(it.BudgetInitial),
		CostFinal:         decFromString(it.CostFinal),
		PaidTotal:         decFromString(it.PaidTotal),
		BalanceDue:        decFromString(it.BalanceDue),
		Status:            entities.JobStatus(it.Status),
		CompletionDate:    timePtrFromString(it.CompletionDate),
		LastBudgetVersion: it.LastBudgetVersion,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
}
