package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/daniloc96/group-console/internal/config"
	"github.com/daniloc96/group-console/internal/models"
)

// API is the subset of the DynamoDB client the store uses.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements the EventStore interface using DynamoDB.
type Store struct {
	client    API
	tableName string
	ttlDays   int
}

// NewStore creates a new DynamoDB-backed EventStore.
func NewStore(ctx context.Context, cfg config.DynamoDBConfig) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.Endpoint != "" {
		// Local development: use static credentials and custom endpoint.
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return newStore(dynamodb.NewFromConfig(awsCfg, clientOpts...), cfg.TableName, cfg.TTLDays), nil
}

func newStore(client API, tableName string, ttlDays int) *Store {
	if ttlDays <= 0 {
		ttlDays = 30
	}
	return &Store{client: client, tableName: tableName, ttlDays: ttlDays}
}

// SaveEvent stores a single telemetry event.
func (s *Store) SaveEvent(ctx context.Context, event models.TelemetryEvent) error {
	item, err := attributevalue.MarshalMap(models.NewEventRecord(event, s.ttlDays))
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("saving event: %w", err)
	}

	return nil
}

// ListGroupEvents returns the most recent events of a group, newest first.
func (s *Store) ListGroupEvents(ctx context.Context, groupID string, limit int) ([]models.TelemetryEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: models.EventPartitionKey(groupID)},
			":sk": &types.AttributeValueMemberS{Value: "EVT#"},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	result, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("querying group events: %w", err)
	}

	var records []models.EventRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling group events: %w", err)
	}

	events := make([]models.TelemetryEvent, 0, len(records))
	for _, r := range records {
		events = append(events, r.Event())
	}
	return events, nil
}
