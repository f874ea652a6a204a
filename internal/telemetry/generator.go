package telemetry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultBufferSize = 256
	saveTimeout       = 5 * time.Second
)

// Generator emits telemetry events without blocking callers. A single
// worker logs each event, archives it in the optional store and counts
// interacts for the optional metrics emitter, which is flushed on Close.
type Generator struct {
	events  chan models.TelemetryEvent
	store   interfaces.EventStore
	metrics interfaces.MetricsEmitter
	now     func() time.Time

	mu     sync.Mutex
	closed bool
	counts map[models.InteractCountKey]int

	dropped int64
	done    chan struct{}
}

// NewGenerator starts a generator. store and metrics may be nil.
func NewGenerator(bufferSize int, store interfaces.EventStore, metrics interfaces.MetricsEmitter) *Generator {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	g := &Generator{
		events:  make(chan models.TelemetryEvent, bufferSize),
		store:   store,
		metrics: metrics,
		now:     time.Now,
		counts:  map[models.InteractCountKey]int{},
		done:    make(chan struct{}),
	}
	go g.run()
	return g
}

// GenerateInteract emits an interact event.
func (g *Generator) GenerateInteract(interactType models.InteractType, subtype models.InteractSubtype, env string, pageID string, objectID models.ActionID, correlation []models.CorrelationData) {
	g.emit(models.TelemetryEvent{
		Kind:        models.EventInteract,
		Type:        string(interactType),
		Subtype:     string(subtype),
		Environment: env,
		PageID:      pageID,
		ObjectID:    objectID,
		Correlation: correlation,
	})
}

// GenerateImpression emits an impression event.
func (g *Generator) GenerateImpression(impressionType string, pageID string, env string, correlation []models.CorrelationData) {
	g.emit(models.TelemetryEvent{
		Kind:        models.EventImpression,
		Type:        impressionType,
		Environment: env,
		PageID:      pageID,
		Correlation: correlation,
	})
}

// GenerateBackClicked emits a back navigation event.
func (g *Generator) GenerateBackClicked(pageID string, env string, isNavBack bool, correlation []models.CorrelationData) {
	g.emit(models.TelemetryEvent{
		Kind:        models.EventBackClicked,
		Type:        string(models.InteractTouch),
		Environment: env,
		PageID:      pageID,
		NavBack:     isNavBack,
		Correlation: correlation,
	})
}

func (g *Generator) emit(event models.TelemetryEvent) {
	event.EventID = uuid.NewString()
	event.Timestamp = g.now().UTC()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		atomic.AddInt64(&g.dropped, 1)
		return
	}
	select {
	case g.events <- event:
	default:
		atomic.AddInt64(&g.dropped, 1)
		logrus.WithFields(event.LogFields()).Warn("⚠ Telemetry buffer full, event dropped")
	}
}

func (g *Generator) run() {
	defer close(g.done)
	for event := range g.events {
		logrus.WithFields(event.LogFields()).Debug("📊 Telemetry event")

		if event.Kind == models.EventInteract {
			key := models.InteractCountKey{Type: models.InteractType(event.Type), ActionID: event.ObjectID}
			g.mu.Lock()
			g.counts[key]++
			g.mu.Unlock()
		}

		if g.store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			if err := g.store.SaveEvent(ctx, event); err != nil {
				logrus.WithError(err).WithFields(event.LogFields()).Warn("⚠ Failed to archive telemetry event")
			}
			cancel()
		}
	}
}

// Counts returns a snapshot of the interact counters.
func (g *Generator) Counts() map[models.InteractCountKey]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[models.InteractCountKey]int, len(g.counts))
	for k, v := range g.counts {
		out[k] = v
	}
	return out
}

// Dropped returns how many events were discarded.
func (g *Generator) Dropped() int64 {
	return atomic.LoadInt64(&g.dropped)
}

// Close drains pending events and publishes the interact counters.
func (g *Generator) Close(ctx context.Context) error {
	g.mu.Lock()
	if !g.closed {
		g.closed = true
		close(g.events)
	}
	g.mu.Unlock()

	select {
	case <-g.done:
	case <-ctx.Done():
		return fmt.Errorf("draining telemetry: %w", ctx.Err())
	}

	counts := g.Counts()
	if g.metrics == nil || len(counts) == 0 {
		return nil
	}
	if err := g.metrics.EmitInteractCounts(ctx, counts); err != nil {
		return fmt.Errorf("publishing telemetry counters: %w", err)
	}
	logrus.WithField("series", len(counts)).Info("📈 Telemetry counters published")
	return nil
}
