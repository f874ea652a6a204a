package models

import (
	"fmt"
	"time"
)

// EventRecord is a telemetry event as archived in DynamoDB.
type EventRecord struct {
	PK          string            `dynamodbav:"pk"` // GROUP#<group id>
	SK          string            `dynamodbav:"sk"` // EVT#<timestamp>#<event id>
	EventID     string            `dynamodbav:"event_id"`
	Kind        EventKind         `dynamodbav:"kind"`
	Type        string            `dynamodbav:"type"`
	Subtype     string            `dynamodbav:"subtype,omitempty"`
	Environment string            `dynamodbav:"env"`
	PageID      string            `dynamodbav:"page_id"`
	ObjectID    ActionID          `dynamodbav:"object_id,omitempty"`
	NavBack     bool              `dynamodbav:"nav_back,omitempty"`
	Correlation []CorrelationData `dynamodbav:"correlation,omitempty"`
	Timestamp   time.Time         `dynamodbav:"timestamp"`
	TTL         int64             `dynamodbav:"ttl"`
}

// UnattributedGroup is the partition used for events without a group correlation.
const UnattributedGroup = "none"

// NewEventRecord creates an EventRecord with all key attributes set.
func NewEventRecord(event TelemetryEvent, ttlDays int) EventRecord {
	ts := event.Timestamp.UTC()
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	groupID := event.GroupID()
	if groupID == "" {
		groupID = UnattributedGroup
	}

	return EventRecord{
		PK:          EventPartitionKey(groupID),
		SK:          fmt.Sprintf("EVT#%s#%s", ts.Format(time.RFC3339Nano), event.EventID),
		EventID:     event.EventID,
		Kind:        event.Kind,
		Type:        event.Type,
		Subtype:     event.Subtype,
		Environment: event.Environment,
		PageID:      event.PageID,
		ObjectID:    event.ObjectID,
		NavBack:     event.NavBack,
		Correlation: event.Correlation,
		Timestamp:   ts,
		TTL:         ts.AddDate(0, 0, ttlDays).Unix(),
	}
}

// EventPartitionKey returns the partition key for a group's events.
func EventPartitionKey(groupID string) string {
	return "GROUP#" + groupID
}

// Event converts the record back into a TelemetryEvent.
func (r EventRecord) Event() TelemetryEvent {
	return TelemetryEvent{
		EventID:     r.EventID,
		Kind:        r.Kind,
		Type:        r.Type,
		Subtype:     r.Subtype,
		Environment: r.Environment,
		PageID:      r.PageID,
		ObjectID:    r.ObjectID,
		NavBack:     r.NavBack,
		Correlation: r.Correlation,
		Timestamp:   r.Timestamp,
	}
}
