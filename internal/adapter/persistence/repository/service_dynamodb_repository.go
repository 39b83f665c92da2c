package repository

import (
	"context"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type variantItem struct {
	ID               string   `dynamodbav:"id"`
	Name             string   `dynamodbav:"name"`
	BasePrice        float64  `dynamodbav:"base_price"`
	SizeMatch        string   `dynamodbav:"size_match,omitempty"`
	TierMatch        string   `dynamodbav:"tier_match,omitempty"`
	IncludedServices []string `dynamodbav:"included_services,omitempty"`
}

type serviceItem struct {
	ID              string        `dynamodbav:"id"`
	Name            string        `dynamodbav:"name"`
	Category        string        `dynamodbav:"category"`
	VendorID        string        `dynamodbav:"vendor_id,omitempty"`
	VariantSelector string        `dynamodbav:"variant_selector,omitempty"`
	Variants        []variantItem `dynamodbav:"variants"`
	IncludesTax     bool          `dynamodbav:"includes_tax"`
	Active          bool          `dynamodbav:"active"`
}

// ServiceDynamoRepository persists catalog Services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Variants are stored nested in the item; the catalog is small and always
// read whole.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Save(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromServiceItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	variants := make([]variantItem, len(s.Variants))
	for i, v := range s.Variants {
		variants[i] = variantItem{
			ID:               v.ID,
			Name:             v.Name,
			BasePrice:        v.BasePrice,
			SizeMatch:        v.SizeMatch,
			TierMatch:        v.TierMatch,
			IncludedServices: v.IncludedServices,
		}
	}
	return serviceItem{
		ID:              s.ID,
		Name:            s.Name,
		Category:        string(s.Category),
		VendorID:        s.VendorID,
		VariantSelector: string(s.VariantSelector),
		Variants:        variants,
		IncludesTax:     s.IncludesTax,
		Active:          s.Active,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	variants := make([]entities.Variant, len(it.Variants))
	for i, v := range it.Variants {
		variants[i] = entities.Variant{
			ID:               v.ID,
			Name:             v.Name,
			BasePrice:        v.BasePrice,
			SizeMatch:        v.SizeMatch,
			TierMatch:        v.TierMatch,
			IncludedServices: v.IncludedServices,
		}
	}
	return entities.Service{
		ID:              it.ID,
		Name:            it.Name,
		Category:        entities.ServiceCategory(it.Category),
		VendorID:        it.VendorID,
		VariantSelector: entities.VariantSelector(it.VariantSelector),
		Variants:        variants,
		IncludesTax:     it.IncludesTax,
		Active:          it.Active,
	}
}
