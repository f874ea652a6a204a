package telemetry

import (
	"sync"

	"github.com/daniloc96/group-console/internal/models"
)

// Recorder is a synchronous TelemetryGenerator that keeps every event.
type Recorder struct {
	mu     sync.Mutex
	Events []models.TelemetryEvent
}

func (r *Recorder) add(event models.TelemetryEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

func (r *Recorder) GenerateInteract(interactType models.InteractType, subtype models.InteractSubtype, env string, pageID string, objectID models.ActionID, correlation []models.CorrelationData) {
	r.add(models.TelemetryEvent{
		Kind:        models.EventInteract,
		Type:        string(interactType),
		Subtype:     string(subtype),
		Environment: env,
		PageID:      pageID,
		ObjectID:    objectID,
		Correlation: correlation,
	})
}

func (r *Recorder) GenerateImpression(impressionType string, pageID string, env string, correlation []models.CorrelationData) {
	r.add(models.TelemetryEvent{
		Kind:        models.EventImpression,
		Type:        impressionType,
		Environment: env,
		PageID:      pageID,
		Correlation: correlation,
	})
}

func (r *Recorder) GenerateBackClicked(pageID string, env string, isNavBack bool, correlation []models.CorrelationData) {
	r.add(models.TelemetryEvent{
		Kind:        models.EventBackClicked,
		Type:        string(models.InteractTouch),
		Environment: env,
		PageID:      pageID,
		NavBack:     isNavBack,
		Correlation: correlation,
	})
}

// Interacts returns the interact events in emission order.
func (r *Recorder) Interacts() []models.TelemetryEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TelemetryEvent
	for _, e := range r.Events {
		if e.Kind == models.EventInteract {
			out = append(out, e)
		}
	}
	return out
}

// InteractTypes returns the type of every interact event in order.
func (r *Recorder) InteractTypes() []string {
	events := r.Interacts()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// Discard drops every event.
type Discard struct{}

func (Discard) GenerateInteract(models.InteractType, models.InteractSubtype, string, string, models.ActionID, []models.CorrelationData) {
}

func (Discard) GenerateImpression(string, string, string, []models.CorrelationData) {}

func (Discard) GenerateBackClicked(string, string, bool, []models.CorrelationData) {}
