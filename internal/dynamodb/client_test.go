package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/daniloc96/group-console/internal/models"
)

type fakeDynamo struct {
	putInput   *dynamodb.PutItemInput
	queryInput *dynamodb.QueryInput
	items      []map[string]types.AttributeValue
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params
	f.items = append(f.items, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInput = params
	return &dynamodb.QueryOutput{Items: f.items}, nil
}

func sampleEvent() models.TelemetryEvent {
	return models.TelemetryEvent{
		EventID:     "evt-1",
		Kind:        models.EventInteract,
		Type:        string(models.InteractSuccess),
		Environment: models.EnvironmentGroup,
		PageID:      models.PageGroupDetail,
		ObjectID:    models.ActionLeaveGroup,
		Correlation: models.GroupCorrelation("g-1"),
		Timestamp:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewEventRecord(t *testing.T) {
	record := models.NewEventRecord(sampleEvent(), 30)

	if record.PK != "GROUP#g-1" {
		t.Fatalf("expected PK GROUP#g-1, got %s", record.PK)
	}
	if record.SK != "EVT#2026-03-01T10:00:00Z#evt-1" {
		t.Fatalf("unexpected SK %s", record.SK)
	}
	expectedTTL := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC).Unix()
	if record.TTL != expectedTTL {
		t.Fatalf("expected TTL %d, got %d", expectedTTL, record.TTL)
	}

	orphan := sampleEvent()
	orphan.Correlation = nil
	if got := models.NewEventRecord(orphan, 30).PK; got != "GROUP#none" {
		t.Fatalf("expected unattributed partition, got %s", got)
	}
}

func TestSaveAndListEvents(t *testing.T) {
	fake := &fakeDynamo{}
	store := newStore(fake, "group-telemetry", 0)

	if err := store.SaveEvent(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}
	if aws.ToString(fake.putInput.TableName) != "group-telemetry" {
		t.Fatalf("expected table group-telemetry, got %s", aws.ToString(fake.putInput.TableName))
	}
	var saved models.EventRecord
	if err := attributevalue.UnmarshalMap(fake.putInput.Item, &saved); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if saved.ObjectID != models.ActionLeaveGroup {
		t.Fatalf("expected object id leave-group, got %s", saved.ObjectID)
	}

	events, err := store.ListGroupEvents(context.Background(), "g-1", 10)
	if err != nil {
		t.Fatalf("ListGroupEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].EventID != "evt-1" || events[0].GroupID() != "g-1" {
		t.Fatalf("unexpected events %#v", events)
	}
	if aws.ToInt32(fake.queryInput.Limit) != 10 || aws.ToBool(fake.queryInput.ScanIndexForward) {
		t.Fatalf("expected newest-first query limited to 10")
	}
}

func TestMockStoreTracking(t *testing.T) {
	store := &MockStore{}

	ctx := t.Context()
	if err := store.SaveEvent(ctx, sampleEvent()); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}
	if len(store.Saved()) != 1 {
		t.Fatalf("expected 1 saved event, got %d", len(store.Saved()))
	}
	if _, err := store.ListGroupEvents(ctx, "g-1", 5); err != nil {
		t.Fatalf("ListGroupEvents failed: %v", err)
	}
	if len(store.ListCalls) != 1 || store.ListCalls[0].Limit != 5 {
		t.Fatalf("expected list call to be recorded, got %#v", store.ListCalls)
	}
}
