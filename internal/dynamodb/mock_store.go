package dynamodb

import (
	"context"
	"sync"

	"github.com/daniloc96/group-console/internal/models"
)

// MockStore implements EventStore for testing.
type MockStore struct {
	SaveEventFunc       func(ctx context.Context, event models.TelemetryEvent) error
	ListGroupEventsFunc func(ctx context.Context, groupID string, limit int) ([]models.TelemetryEvent, error)

	// Track calls for assertions.
	mu          sync.Mutex
	SavedEvents []models.TelemetryEvent
	ListCalls   []ListCall
}

// ListCall records a call to ListGroupEvents.
type ListCall struct {
	GroupID string
	Limit   int
}

func (m *MockStore) SaveEvent(ctx context.Context, event models.TelemetryEvent) error {
	m.mu.Lock()
	m.SavedEvents = append(m.SavedEvents, event)
	m.mu.Unlock()
	if m.SaveEventFunc != nil {
		return m.SaveEventFunc(ctx, event)
	}
	return nil
}

func (m *MockStore) ListGroupEvents(ctx context.Context, groupID string, limit int) ([]models.TelemetryEvent, error) {
	m.mu.Lock()
	m.ListCalls = append(m.ListCalls, ListCall{GroupID: groupID, Limit: limit})
	m.mu.Unlock()
	if m.ListGroupEventsFunc != nil {
		return m.ListGroupEventsFunc(ctx, groupID, limit)
	}
	return nil, nil
}

// Saved returns a copy of the saved events.
func (m *MockStore) Saved() []models.TelemetryEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.TelemetryEvent, len(m.SavedEvents))
	copy(out, m.SavedEvents)
	return out
}
