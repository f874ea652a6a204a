package groupdetails

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

// Init records the page impression.
func (c *Controller) Init() {
	c.deps.Telemetry.GenerateImpression(models.ImpressionView, models.PageGroupDetail, models.EnvironmentGroup, c.correlation())
}

// HandleBack records the back press and leaves the page.
func (c *Controller) HandleBack(isNavBack bool) {
	c.deps.Telemetry.GenerateBackClicked(models.PageGroupDetail, models.EnvironmentGroup, isNavBack, c.correlation())
	c.deps.Navigator.Back()
}

// SwitchTab selects a tab. Unknown tabs are ignored.
func (c *Controller) SwitchTab(tab Tab) {
	var subtype models.InteractSubtype
	switch tab {
	case TabActivities:
		subtype = models.SubtypeActivityTabClicked
	case TabMembers:
		subtype = models.SubtypeMemberTabClicked
	default:
		return
	}
	c.mu.Lock()
	c.activeTab = tab
	c.mu.Unlock()
	c.interact(models.InteractTouch, subtype, models.ActionNone)
}

// NavigateToAddUserPage opens the add-member screen.
func (c *Controller) NavigateToAddUserPage() {
	c.interact(models.InteractTouch, models.SubtypeAddMemberClicked, models.ActionNone)
	c.deps.Navigator.Navigate(models.RouteAddMemberToGroup, models.NavigationState{
		GroupID:     c.groupID,
		MemberList:  c.MemberList(),
		CorRelation: c.correlation(),
	})
}

// NavigateToAddActivityPage loads the supported activity types and opens the
// add-activity screen. Offline, only the offline toast is shown.
func (c *Controller) NavigateToAddActivityPage(ctx context.Context) error {
	if !c.deps.Network.IsNetworkAvailable() {
		c.deps.Toaster.PresentToastForOffline(c.translate(offlineMessageKey, nil))
		return nil
	}
	c.interact(models.InteractTouch, models.SubtypeAddActivityClicked, models.ActionNone)

	supported, err := c.deps.Groups.GetSupportedActivities(ctx)
	if err != nil {
		logrus.WithError(err).WithField("group_id", c.groupID).Error("✗ Failed to load supported activities")
		return fmt.Errorf("loading supported activities: %w", err)
	}
	for i := range supported {
		supported[i].Title = c.translate(supported[i].Title, nil)
	}

	c.deps.Navigator.Navigate(models.RouteAddActivityToGroup, models.NavigationState{
		GroupID:               c.groupID,
		SupportedActivityList: supported,
		ActivityList:          c.ActivityList(),
		CorRelation:           c.correlation(),
	})
	return nil
}

// OnActivityCardClick opens activity. Admins get the activity progress
// screen, everyone else the content itself.
func (c *Controller) OnActivityCardClick(activity models.GroupActivity) {
	if c.viewerIsAdmin() {
		c.deps.Navigator.Navigate(models.RouteActivityDetails, models.NavigationState{
			LoggedInUser: c.LoggedInUser(),
			GroupDetails: c.Group(),
			MemberList:   c.MemberList(),
			Activity:     &activity,
			CorRelation:  c.correlation(),
		})
		return
	}
	info := activity.ActivityInfo
	c.deps.Navigator.Navigate(models.RouteEnrolledCourseDetails, models.NavigationState{
		Content: &info,
	})
}

// MemberDisplayName returns the label shown for member.
func (c *Controller) MemberDisplayName(member models.GroupMember) string {
	if c.viewerID != "" && member.UserID == c.viewerID {
		return c.translate("LOGGED_IN_MEMBER", map[string]string{"member_name": member.Name})
	}
	return member.Name
}

// ShowMemberMenu reports whether the viewer may manage member.
func (c *Controller) ShowMemberMenu(member models.GroupMember) bool {
	if !c.viewerIsAdmin() || member.UserID == c.viewerID {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.group == nil || member.UserID != c.group.CreatedBy
}

// ExtractInitial returns the upper-cased first letter of name.
func ExtractInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
