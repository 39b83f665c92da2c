package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type lineItemItem struct {
	ServiceID     string   `dynamodbav:"service_id"`
	ServiceName   string   `dynamodbav:"service_name,omitempty"`
	VariantID     string   `dynamodbav:"variant_id,omitempty"`
	VariantName   string   `dynamodbav:"variant_name,omitempty"`
	IsSelected    bool     `dynamodbav:"is_selected"`
	SchedulePrice float64  `dynamodbav:"schedule_price"`
	OverridePrice *float64 `dynamodbav:"override_price,omitempty"`
	IsOverridden  bool     `dynamodbav:"is_overridden"`
}

type budgetItem struct {
	ID              string         `dynamodbav:"id"`
	PropertyAddress string         `dynamodbav:"property_address"`
	Suburb          string         `dynamodbav:"suburb"`
	PropertySize    string         `dynamodbav:"property_size"`
	SuburbTier      string         `dynamodbav:"suburb_tier"`
	LineItems       []lineItemItem `dynamodbav:"line_items"`
	Status          string         `dynamodbav:"status"`
	CreatedAt       string         `dynamodbav:"created_at"`
	UpdatedAt       string         `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budgets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are nested in the item: a budget owns its line items
// exclusively and is always read and written whole. Filtering happens
// in-memory after a scan; the store is local and single-user.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error) {
	var budgets []entities.Budget
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			b := fromBudgetItem(it)
			if matchesFilter(b, filter) {
				budgets = append(budgets, b)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func matchesFilter(b entities.Budget, filter interfaces.BudgetFilter) bool {
	if filter.Status != "" && b.Status != filter.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		if !strings.Contains(strings.ToLower(b.PropertyAddress), q) &&
			!strings.Contains(strings.ToLower(b.Suburb), q) {
			return false
		}
	}
	return true
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]lineItemItem, len(b.LineItems))
	for i, li := range b.LineItems {
		items[i] = lineItemItem{
			ServiceID:     li.ServiceID,
			ServiceName:   li.ServiceName,
			VariantID:     li.VariantID,
			VariantName:   li.VariantName,
			IsSelected:    li.IsSelected,
			SchedulePrice: li.SchedulePrice,
			OverridePrice: li.OverridePrice,
			IsOverridden:  li.IsOverridden,
		}
	}
	return budgetItem{
		ID:              b.ID,
		PropertyAddress: b.PropertyAddress,
		Suburb:          b.Suburb,
		PropertySize:    b.PropertySize,
		SuburbTier:      string(b.SuburbTier),
		LineItems:       items,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.LineItem, len(it.LineItems))
	for i, li := range it.LineItems {
		items[i] = entities.LineItem{
			ServiceID:     li.ServiceID,
			ServiceName:   li.ServiceName,
			VariantID:     li.VariantID,
			VariantName:   li.VariantName,
			IsSelected:    li.IsSelected,
			SchedulePrice: li.SchedulePrice,
			OverridePrice: li.OverridePrice,
			IsOverridden:  li.IsOverridden,
		}
	}
	return entities.Budget{
		ID:              it.ID,
		PropertyAddress: it.PropertyAddress,
		Suburb:          it.Suburb,
		PropertySize:    it.PropertySize,
		SuburbTier:      entities.SuburbTier(it.SuburbTier),
		LineItems:       items,
		Status:          entities.BudgetStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
