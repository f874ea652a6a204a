package models

import (
	"time"

	"github.com/sirupsen/logrus"
)

// InteractType classifies an interact telemetry event.
type InteractType string

const (
	InteractTouch     InteractType = "TOUCH"
	InteractInitiated InteractType = "INITIATED"
	InteractSuccess   InteractType = "SUCCESS"
)

// InteractSubtype names the UI element or step an interaction refers to.
type InteractSubtype string

const (
	SubtypeNone                     InteractSubtype = ""
	SubtypeEditGroupClicked         InteractSubtype = "edit-group-clicked"
	SubtypeDeleteGroupClicked       InteractSubtype = "delete-group-clicked"
	SubtypeLeaveGroupClicked        InteractSubtype = "leave-group-clicked"
	SubtypeMakeGroupAdminClicked    InteractSubtype = "make-group-admin-clicked"
	SubtypeDismissGroupAdminClicked InteractSubtype = "dismiss-group-admin-clicked"
	SubtypeRemoveMemberClicked      InteractSubtype = "remove-member-clicked"
	SubtypeRemoveActivityClicked    InteractSubtype = "remove-activity-clicked"
	SubtypeAddMemberClicked         InteractSubtype = "add-member-clicked"
	SubtypeAddActivityClicked       InteractSubtype = "add-activity-clicked"
	SubtypeActivityTabClicked       InteractSubtype = "activity-tab-clicked"
	SubtypeMemberTabClicked         InteractSubtype = "member-tab-clicked"
)

// ActionID identifies a mutating group operation in INITIATED/SUCCESS events.
type ActionID string

const (
	ActionNone              ActionID = ""
	ActionDeleteGroup       ActionID = "delete-group"
	ActionLeaveGroup        ActionID = "leave-group"
	ActionMakeGroupAdmin    ActionID = "make-group-admin"
	ActionDismissGroupAdmin ActionID = "dismiss-group-admin"
	ActionRemoveMember      ActionID = "remove-member"
	ActionRemoveActivity    ActionID = "remove-activity"
)

// AllActionIDs lists every mutating action id.
var AllActionIDs = []ActionID{
	ActionDeleteGroup,
	ActionLeaveGroup,
	ActionMakeGroupAdmin,
	ActionDismissGroupAdmin,
	ActionRemoveMember,
	ActionRemoveActivity,
}

// Environment and page identifiers used by the group details view.
const (
	EnvironmentGroup = "group"
	PageGroupDetail  = "group-detail"
	ImpressionView   = "view"
)

// CorrelationData links an event to a related entity.
type CorrelationData struct {
	ID   string `json:"id" dynamodbav:"id"`
	Type string `json:"type" dynamodbav:"type"`
}

// EventKind distinguishes the telemetry event families.
type EventKind string

const (
	EventInteract    EventKind = "interact"
	EventImpression  EventKind = "impression"
	EventBackClicked EventKind = "back_clicked"
)

// TelemetryEvent is a single analytics record.
type TelemetryEvent struct {
	EventID     string            `json:"event_id"`
	Kind        EventKind         `json:"kind"`
	Type        string            `json:"type"`
	Subtype     string            `json:"subtype,omitempty"`
	Environment string            `json:"env"`
	PageID      string            `json:"page_id"`
	ObjectID    ActionID          `json:"object_id,omitempty"`
	NavBack     bool              `json:"nav_back,omitempty"`
	Correlation []CorrelationData `json:"correlation,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// GroupID returns the correlated group id, if any.
func (e *TelemetryEvent) GroupID() string {
	for _, c := range e.Correlation {
		if c.Type == CorrelationGroupID {
			return c.ID
		}
	}
	return ""
}

// LogFields returns structured logging fields for this event.
func (e *TelemetryEvent) LogFields() logrus.Fields {
	fields := logrus.Fields{
		"event": e.Kind,
		"type":  e.Type,
		"page":  e.PageID,
	}
	if e.Subtype != "" {
		fields["subtype"] = e.Subtype
	}
	if e.ObjectID != "" {
		fields["action_id"] = e.ObjectID
	}
	if id := e.GroupID(); id != "" {
		fields["group_id"] = id
	}
	return fields
}

// CorrelationGroupID is the correlation type used for the viewed group.
const CorrelationGroupID = "GroupId"

// GroupCorrelation builds the correlation list for a group.
func GroupCorrelation(groupID string) []CorrelationData {
	return []CorrelationData{{ID: groupID, Type: CorrelationGroupID}}
}

// InteractCountKey groups interact events for metric aggregation.
type InteractCountKey struct {
	Type     InteractType
	ActionID ActionID
}
