package interfaces

import (
	"context"

	"github.com/daniloc96/group-console/internal/models"
)

// GroupService defines operations needed from the remote group service.
// Mutations return either a response (possibly carrying an error map) or a
// transport error.
type GroupService interface {
	GetByID(ctx context.Context, groupID string) (*models.GroupDetails, error)
	DeleteByID(ctx context.Context, groupID string) (*models.MutationResponse, error)
	RemoveMembers(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error)
	UpdateMembers(ctx context.Context, groupID string, updates []models.MemberRoleUpdate) (*models.MutationResponse, error)
	RemoveActivities(ctx context.Context, groupID string, activityIDs []string) (*models.MutationResponse, error)
	GetSupportedActivities(ctx context.Context) ([]models.SupportedActivity, error)
}

// TelemetryGenerator emits analytics events. Calls never block the caller.
type TelemetryGenerator interface {
	GenerateInteract(interactType models.InteractType, subtype models.InteractSubtype, env string, pageID string, objectID models.ActionID, correlation []models.CorrelationData)
	GenerateImpression(impressionType string, pageID string, env string, correlation []models.CorrelationData)
	GenerateBackClicked(pageID string, env string, isNavBack bool, correlation []models.CorrelationData)
}

// Translator resolves localized messages.
type Translator interface {
	TranslateMessage(key string, params map[string]string) string
}

// NetworkInfo reports connectivity.
type NetworkInfo interface {
	IsNetworkAvailable() bool
}

// Navigator moves between screens.
type Navigator interface {
	Navigate(route string, state models.NavigationState)
	Back()
}

// PopoverController presents modal choices. A nil result means the popover
// was dismissed without data.
type PopoverController interface {
	PresentMenu(ctx context.Context, req models.MenuRequest) (*models.PopoverResult, error)
	PresentConfirm(ctx context.Context, req models.ConfirmRequest) (*models.PopoverResult, error)
}

// Toaster shows transient messages.
type Toaster interface {
	ShowToast(message string)
	PresentToastForOffline(message string)
}

// Loader is a blocking progress indicator.
type Loader interface {
	Present()
	Dismiss()
}

// LoaderFactory creates loaders.
type LoaderFactory interface {
	GetLoader() Loader
}

// EventStore defines operations for archiving telemetry events.
type EventStore interface {
	// SaveEvent stores a single telemetry event.
	SaveEvent(ctx context.Context, event models.TelemetryEvent) error

	// ListGroupEvents returns the most recent events correlated with a group.
	ListGroupEvents(ctx context.Context, groupID string, limit int) ([]models.TelemetryEvent, error)
}

// MetricsEmitter publishes aggregated interact counters.
type MetricsEmitter interface {
	EmitInteractCounts(ctx context.Context, counts map[models.InteractCountKey]int) error
}
