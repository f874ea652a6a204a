package groupdetails

import (
	"context"

	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

// GroupMenuItems returns the group overflow menu for the viewer.
func (c *Controller) GroupMenuItems() []models.MenuTag {
	switch {
	case c.viewerIsCreator():
		return models.GroupCreatorMenu
	case c.viewerIsAdmin():
		return models.GroupAdminMenu
	default:
		return models.GroupNonAdminMenu
	}
}

// MemberMenuItems returns the overflow menu for member.
func (c *Controller) MemberMenuItems(member models.GroupMember) []models.MenuTag {
	if member.IsAdmin() {
		return models.MemberAdminMenu
	}
	return models.MemberNonAdminMenu
}

// GroupMenuClick opens the group menu and runs the selected action.
func (c *Controller) GroupMenuClick(ctx context.Context) models.WorkflowResult {
	res := models.WorkflowResult{States: []models.WorkflowState{models.StateIdle}}
	tag, ok := c.openMenu(ctx, &res, c.GroupMenuItems())
	if !ok {
		return res
	}

	switch tag {
	case models.MenuEditGroupDetails:
		c.interact(models.InteractTouch, models.SubtypeEditGroupClicked, models.ActionNone)
		c.deps.Navigator.Navigate(models.RouteCreateEditGroup, models.NavigationState{
			GroupDetails: c.Group(),
			CorRelation:  c.correlation(),
		})
		res.Enter(models.StateIdle)
	case models.MenuDeleteGroup:
		c.interact(models.InteractTouch, models.SubtypeDeleteGroupClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.deleteGroup())
	case models.MenuLeaveGroup:
		c.interact(models.InteractTouch, models.SubtypeLeaveGroupClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.leaveGroup())
	}
	return res
}

// MemberMenuClick opens the menu for member and runs the selected action.
// Nothing happens when the viewer may not manage member.
func (c *Controller) MemberMenuClick(ctx context.Context, member models.GroupMember) models.WorkflowResult {
	res := models.WorkflowResult{States: []models.WorkflowState{models.StateIdle}}
	if !c.ShowMemberMenu(member) {
		logrus.WithFields(logrus.Fields{"group_id": c.groupID, "user_id": member.UserID}).Warn("⚠ Member menu not available for this member")
		return res
	}
	tag, ok := c.openMenu(ctx, &res, c.MemberMenuItems(member))
	if !ok {
		return res
	}

	switch tag {
	case models.MenuMakeGroupAdmin:
		c.interact(models.InteractTouch, models.SubtypeMakeGroupAdminClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.makeGroupAdmin(member))
	case models.MenuDismissAsGroupAdmin:
		c.interact(models.InteractTouch, models.SubtypeDismissGroupAdminClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.dismissGroupAdmin(member))
	case models.MenuRemoveFromGroup:
		c.interact(models.InteractTouch, models.SubtypeRemoveMemberClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.removeMember(member))
	}
	return res
}

// ActivityMenuClick opens the menu for activity and runs the selected action.
// Only admins manage activities.
func (c *Controller) ActivityMenuClick(ctx context.Context, activity models.GroupActivity) models.WorkflowResult {
	res := models.WorkflowResult{States: []models.WorkflowState{models.StateIdle}}
	if !c.viewerIsAdmin() {
		logrus.WithFields(logrus.Fields{"group_id": c.groupID, "activity_id": activity.ID}).Warn("⚠ Activity menu requires a group admin")
		return res
	}
	tag, ok := c.openMenu(ctx, &res, models.ActivityMenu)
	if !ok {
		return res
	}

	if tag == models.MenuRemoveFromGroup {
		c.interact(models.InteractTouch, models.SubtypeRemoveActivityClicked, models.ActionNone)
		c.confirmAndMutate(ctx, &res, c.removeActivity(activity))
	}
	return res
}

// openMenu presents items and returns the selected tag. Dismissal, an empty
// selection or a tag that was not offered all return false and leave res idle.
func (c *Controller) openMenu(ctx context.Context, res *models.WorkflowResult, items []models.MenuTag) (models.MenuTag, bool) {
	res.Enter(models.StateMenuOpen)
	choice, err := c.deps.Popovers.PresentMenu(ctx, models.MenuRequest{Items: items})
	if err != nil {
		logrus.WithError(err).WithField("group_id", c.groupID).Warn("⚠ Menu popover failed")
		res.Enter(models.StateIdle)
		return "", false
	}
	if choice == nil || choice.SelectedItem == "" {
		res.Enter(models.StateIdle)
		return "", false
	}
	for _, item := range items {
		if item == choice.SelectedItem {
			res.Selected = item
			return item, true
		}
	}
	logrus.WithFields(logrus.Fields{"group_id": c.groupID, "selected": choice.SelectedItem}).Debug("Ignoring unknown menu selection")
	res.Enter(models.StateIdle)
	return "", false
}
