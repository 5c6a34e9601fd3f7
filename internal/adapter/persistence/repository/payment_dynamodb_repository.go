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
	defaultPaymentsTableName = "payments"
	paymentsJobIDIndex       = "job_id-index"
	paymentsStepIDIndex      = "step_id-index"
)

type paymentItem struct {
	ID        string `dynamodbav:"id"`
	JobID     string `dynamodbav:"job_id"`
	StepID    string `dynamodbav:"step_id,omitempty"`
	Amount    string `dynamodbav:"amount"`
	Date      string `dynamodbav:"date"`
	Method    string `dynamodbav:"method"`
	Reference string `dynamodbav:"reference,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: step_id-index (PK: step_id)
//
// step_id is omitted for general payments, so the step_id-index is sparse
// and only ever returns direct payments.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsJobIDIndex, "job_id = :v", jobID)
}

func (r *PaymentDynamoRepository) ListByStepID(ctx context.Context, stepID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsStepIDIndex, "step_id = :v", stepID)
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:        p.ID,
		JobID:     p.JobID,
		StepID:    p.StepID,
		Amount:    decToString(p.Amount),
		Date:      timeToString(p.Date),
		Method:    string(p.Method),
		Reference: p.Reference,
		CreatedAt: timeToString(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:        it.ID,
		JobID:     it.JobID,
		StepID:    it.StepID,
		Amount:    decFromString(it.Amount),
		Date:      timeFromString(it.Date),
		Method:    entities.PaymentMethod(it.Method),
		Reference: it.Reference,
		CreatedAt: timeFromString(it.CreatedAt),
	}
}
