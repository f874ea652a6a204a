package groupdetails

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

// Tab is a section of the group details view.
type Tab string

const (
	TabMembers    Tab = "members"
	TabActivities Tab = "activities"
)

// Dependencies are the collaborators a Controller needs.
type Dependencies struct {
	Groups     interfaces.GroupService
	Telemetry  interfaces.TelemetryGenerator
	Translator interfaces.Translator
	Network    interfaces.NetworkInfo
	Navigator  interfaces.Navigator
	Popovers   interfaces.PopoverController
	Toaster    interfaces.Toaster
	Loaders    interfaces.LoaderFactory
}

func (d Dependencies) validate() error {
	var missing []string
	if d.Groups == nil {
		missing = append(missing, "group service")
	}
	if d.Telemetry == nil {
		missing = append(missing, "telemetry")
	}
	if d.Translator == nil {
		missing = append(missing, "translator")
	}
	if d.Network == nil {
		missing = append(missing, "network info")
	}
	if d.Navigator == nil {
		missing = append(missing, "navigator")
	}
	if d.Popovers == nil {
		missing = append(missing, "popover controller")
	}
	if d.Toaster == nil {
		missing = append(missing, "toaster")
	}
	if d.Loaders == nil {
		missing = append(missing, "loader factory")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Controller holds the state of one group details view and runs the user
// actions available on it. The mutex only protects memory; overlapping
// workflows are not serialized.
type Controller struct {
	groupID  string
	viewerID string
	deps     Dependencies

	mu                   sync.RWMutex
	group                *models.GroupDetails
	memberList           []models.GroupMember
	filteredMemberList   []models.GroupMember
	activityList         []models.GroupActivity
	filteredActivityList []models.GroupActivity
	loggedinUser         *models.GroupMember
	creator              *models.GroupMember
	activeTab            Tab
}

// NewController creates a controller for groupID as seen by viewerID.
func NewController(groupID string, viewerID string, deps Dependencies) (*Controller, error) {
	if groupID == "" {
		return nil, fmt.Errorf("group id is required")
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Controller{
		groupID:   groupID,
		viewerID:  viewerID,
		deps:      deps,
		activeTab: TabActivities,
	}, nil
}

// Load fetches the group and rebuilds the derived lists. On failure the
// previous state is kept.
func (c *Controller) Load(ctx context.Context) error {
	group, err := c.deps.Groups.GetByID(ctx, c.groupID)
	if err != nil {
		logrus.WithError(err).WithField("group_id", c.groupID).Error("✗ Failed to load group details")
		return fmt.Errorf("loading group %s: %w", c.groupID, err)
	}
	if group == nil {
		logrus.WithField("group_id", c.groupID).Error("✗ Group service returned no group")
		return fmt.Errorf("loading group %s: empty response", c.groupID)
	}

	members := OrderMembers(group.Members, c.viewerID)
	activities := make([]models.GroupActivity, len(group.Activities))
	copy(activities, group.Activities)
	viewer := group.FindMember(c.viewerID)

	c.mu.Lock()
	c.group = cloneGroup(group)
	c.memberList = members
	c.filteredMemberList = cloneMembers(members)
	c.activityList = activities
	c.filteredActivityList = cloneActivities(activities)
	c.loggedinUser = viewer
	c.creator = group.Creator()
	c.mu.Unlock()

	fields := logrus.Fields{
		"group_id":   c.groupID,
		"members":    len(members),
		"activities": len(activities),
	}
	if viewer != nil {
		fields["viewer_role"] = viewer.Role
	}
	logrus.WithFields(fields).Info("📋 Group details loaded")
	for _, m := range members {
		logrus.WithFields(logrus.Fields{"user_id": m.UserID, "role": m.Role}).Debug("  Group member")
	}
	return nil
}

// GroupID returns the id of the viewed group.
func (c *Controller) GroupID() string {
	return c.groupID
}

// ViewerID returns the id of the signed-in user.
func (c *Controller) ViewerID() string {
	return c.viewerID
}

// Group returns a copy of the last loaded group record, or nil.
func (c *Controller) Group() *models.GroupDetails {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneGroup(c.group)
}

// MemberList returns the ordered member list.
func (c *Controller) MemberList() []models.GroupMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneMembers(c.memberList)
}

// FilteredMemberList returns the member list narrowed by the last search.
func (c *Controller) FilteredMemberList() []models.GroupMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneMembers(c.filteredMemberList)
}

// ActivityList returns the group's activities.
func (c *Controller) ActivityList() []models.GroupActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneActivities(c.activityList)
}

// FilteredActivityList returns the activity list narrowed by the last search.
func (c *Controller) FilteredActivityList() []models.GroupActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneActivities(c.filteredActivityList)
}

// LoggedInUser returns the viewer's own member entry, or nil when the viewer
// is not a member.
func (c *Controller) LoggedInUser() *models.GroupMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loggedinUser
}

// Creator returns the group creator's member entry, or nil.
func (c *Controller) Creator() *models.GroupMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creator
}

// ActiveTab returns the selected tab.
func (c *Controller) ActiveTab() Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeTab
}

func (c *Controller) viewerIsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loggedinUser != nil && c.loggedinUser.IsAdmin()
}

func (c *Controller) viewerIsCreator() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.group != nil && c.viewerID != "" && c.group.CreatedBy == c.viewerID
}

func (c *Controller) groupName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.group == nil {
		return ""
	}
	return c.group.Name
}

func (c *Controller) correlation() []models.CorrelationData {
	return models.GroupCorrelation(c.groupID)
}

func (c *Controller) interact(interactType models.InteractType, subtype models.InteractSubtype, action models.ActionID) {
	c.deps.Telemetry.GenerateInteract(interactType, subtype, models.EnvironmentGroup, models.PageGroupDetail, action, c.correlation())
}

func (c *Controller) translate(key string, params map[string]string) string {
	return c.deps.Translator.TranslateMessage(key, params)
}

func cloneMembers(in []models.GroupMember) []models.GroupMember {
	if in == nil {
		return nil
	}
	out := make([]models.GroupMember, len(in))
	copy(out, in)
	return out
}

func cloneActivities(in []models.GroupActivity) []models.GroupActivity {
	if in == nil {
		return nil
	}
	out := make([]models.GroupActivity, len(in))
	copy(out, in)
	return out
}

func cloneGroup(in *models.GroupDetails) *models.GroupDetails {
	if in == nil {
		return nil
	}
	out := *in
	out.Members = cloneMembers(in.Members)
	out.Activities = cloneActivities(in.Activities)
	return &out
}
