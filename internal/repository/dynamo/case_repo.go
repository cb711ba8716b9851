package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/port"
)

type caseRepo struct {
	client *dynamodb.Client
	table  string
}

// NewCaseRepo creates a DynamoDB-backed CaseRepository for the given table.
func NewCaseRepo(client *dynamodb.Client, table string) port.CaseRepository {
	return &caseRepo{client: client, table: table}
}

// ListAll scans the full case table. The store does not guarantee any
// ordering. Each record's numeric attributes are normalized to native
// int64/float64 values.
func (r *caseRepo) ListAll(ctx context.Context) ([]domain.Case, error) {
	var cases []domain.Case

	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scanning table %s: %w", r.table, err)
		}
		for _, item := range out.Items {
			cases = append(cases, caseFromItem(itemToNative(item)))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return cases, nil
}

func (r *caseRepo) GetByID(ctx context.Context, caseID string) (*domain.Case, error) {
	key, err := caseKey(caseID)
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("getting case %s: %w", caseID, err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrCaseNotFound
	}

	c := caseFromItem(itemToNative(out.Item))
	return &c, nil
}

// UpdateStatus persists a status change for exactly one case. The write is
// conditioned on the case existing so that an unknown ID fails instead of
// upserting a phantom item. No version check is applied; concurrent
// editors last-write-win.
func (r *caseRepo) UpdateStatus(ctx context.Context, caseID string, status domain.CaseStatus) error {
	key, err := caseKey(caseID)
	if err != nil {
		return err
	}

	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name("status"), expression.Value(string(status)))).
		WithCondition(expression.AttributeExists(expression.Name("caseID"))).
		Build()
	if err != nil {
		return fmt.Errorf("building update expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return domain.ErrCaseNotFound
		}
		return fmt.Errorf("updating case %s: %w", caseID, err)
	}
	return nil
}

func caseKey(caseID string) (map[string]types.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"caseID": caseID})
	if err != nil {
		return nil, fmt.Errorf("marshaling case key: %w", err)
	}
	return key, nil
}
