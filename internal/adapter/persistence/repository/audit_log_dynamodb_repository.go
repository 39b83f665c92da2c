package repository

import (
	"context"
	"sort"
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditLogTableName = "audit_log"

// DynamoDB batch writes are capped at 25 requests.
const batchWriteChunk = 25

type auditEntryItem struct {
	ID          string `dynamodbav:"id"`
	Timestamp   string `dynamodbav:"timestamp"`
	User        string `dynamodbav:"user"`
	EntityType  string `dynamodbav:"entity_type"`
	EntityID    string `dynamodbav:"entity_id,omitempty"`
	EntityLabel string `dynamodbav:"entity_label"`
	Action      string `dynamodbav:"action"`
	Summary     string `dynamodbav:"summary"`
	Before      string `dynamodbav:"before,omitempty"`
	After       string `dynamodbav:"after,omitempty"`
}

// AuditLogDynamoRepository is the append-only audit trail in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Append uses a conditional put so an entry can never be overwritten; the
// only way content leaves this table is Clear.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, entry entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(toAuditEntryItem(entry))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// List returns the newest entries first, up to limit.
func (r *AuditLogDynamoRepository) List(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	var entries []entities.AuditEntry
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []auditEntryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromAuditEntryItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *AuditLogDynamoRepository) Clear(ctx context.Context) error {
	var keys []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#id"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		keys = append(keys, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	for start := 0; start < len(keys); start += batchWriteChunk {
		end := start + batchWriteChunk
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}

		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: requests,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toAuditEntryItem(e entities.AuditEntry) auditEntryItem {
	return auditEntryItem{
		ID:          e.ID,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339Nano),
		User:        e.User,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EntityLabel: e.EntityLabel,
		Action:      string(e.Action),
		Summary:     e.Summary,
		Before:      string(e.Before),
		After:       string(e.After),
	}
}

func fromAuditEntryItem(it auditEntryItem) entities.AuditEntry {
	timestamp, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	e := entities.AuditEntry{
		ID:          it.ID,
		Timestamp:   timestamp,
		User:        it.User,
		EntityType:  it.EntityType,
		EntityID:    it.EntityID,
		EntityLabel: it.EntityLabel,
		Action:      entities.AuditAction(it.Action),
		Summary:     it.Summary,
	}
	if it.Before != "" {
		e.Before = []byte(it.Before)
	}
	if it.After != "" {
		e.After = []byte(it.After)
	}
	return e
}
