package console

import (
	"sync"
	"time"

	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

// Toaster prints toasts through the logger.
type Toaster struct {
	mu       sync.Mutex
	messages []string
}

func (t *Toaster) ShowToast(message string) {
	t.record(message)
	logrus.WithField("toast", message).Info("💬 " + message)
}

func (t *Toaster) PresentToastForOffline(message string) {
	t.record(message)
	logrus.WithField("toast", message).Warn("📡 " + message)
}

func (t *Toaster) record(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, message)
}

// Messages returns every toast shown so far.
func (t *Toaster) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.messages))
	copy(out, t.messages)
	return out
}

// Visit is a route the Navigator was asked to open.
type Visit struct {
	Route string
	State models.NavigationState
}

// Navigator keeps a route stack instead of switching screens.
type Navigator struct {
	mu     sync.Mutex
	visits []Visit
	backs  int
}

func (n *Navigator) Navigate(route string, state models.NavigationState) {
	n.mu.Lock()
	n.visits = append(n.visits, Visit{Route: route, State: state})
	n.mu.Unlock()

	fields := logrus.Fields{"route": route}
	if state.GroupID != "" {
		fields["group_id"] = state.GroupID
	}
	if state.GroupDetails != nil {
		fields["group_id"] = state.GroupDetails.GroupID
	}
	if len(state.SupportedActivityList) > 0 {
		fields["supported_activities"] = len(state.SupportedActivityList)
	}
	if state.Activity != nil {
		fields["activity_id"] = state.Activity.ID
	}
	if state.Content != nil {
		fields["content_id"] = state.Content.Identifier
	}
	logrus.WithFields(fields).Info("➡️  Navigate")
}

func (n *Navigator) Back() {
	n.mu.Lock()
	n.backs++
	n.mu.Unlock()
	logrus.Info("⬅️  Back")
}

// Visits returns the routes opened so far.
func (n *Navigator) Visits() []Visit {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Visit, len(n.visits))
	copy(out, n.visits)
	return out
}

// Backs returns how many times Back was called.
func (n *Navigator) Backs() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.backs
}

// Loaders hands out loaders that log how long the wrapped call took.
type Loaders struct{}

func (Loaders) GetLoader() interfaces.Loader {
	return &loader{}
}

type loader struct {
	started time.Time
}

func (l *loader) Present() {
	l.started = time.Now()
	logrus.Debug("⏳ Working...")
}

func (l *loader) Dismiss() {
	if l.started.IsZero() {
		return
	}
	logrus.WithField("duration", time.Since(l.started).Round(time.Millisecond)).Debug("⏳ Done")
	l.started = time.Time{}
}
