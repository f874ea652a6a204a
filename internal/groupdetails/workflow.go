package groupdetails

import (
	"context"

	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

const offlineMessageKey = "YOU_ARE_NOT_CONNECTED_TO_THE_INTERNET"

// mutation describes one confirm-then-mutate action.
type mutation struct {
	action     models.ActionID
	titleKey   string
	buttonKey  string
	descKey    string
	successKey string
	errorKey   string
	params     map[string]string
	call       func(ctx context.Context) (*models.MutationResponse, error)
	onSuccess  func(ctx context.Context)
}

// confirmAndMutate drives res from CONFIRM_OPEN to IDLE. The TOUCH event has
// already been emitted by the dispatcher.
func (c *Controller) confirmAndMutate(ctx context.Context, res *models.WorkflowResult, m mutation) {
	res.Action = m.action
	fields := logrus.Fields{"group_id": c.groupID, "action": m.action}

	req := models.ConfirmRequest{
		Title:       c.translate(m.titleKey, nil),
		ButtonLabel: c.translate(m.buttonKey, nil),
		Description: c.translate(m.descKey, m.params),
	}
	res.Enter(models.StateConfirmOpen)
	answer, err := c.deps.Popovers.PresentConfirm(ctx, req)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("⚠ Confirm popover failed")
	}
	if err != nil || answer == nil || !answer.IsLeftButtonClicked {
		res.Enter(models.StateCancelled)
		res.Enter(models.StateIdle)
		logrus.WithFields(fields).Debug("Action not confirmed")
		return
	}
	res.Confirmed = true

	res.Enter(models.StateNetworkCheck)
	if !c.deps.Network.IsNetworkAvailable() {
		res.Offline = true
		c.deps.Toaster.PresentToastForOffline(c.translate(offlineMessageKey, nil))
		res.Enter(models.StateIdle)
		logrus.WithFields(fields).Warn("⚠ Network unavailable, action skipped")
		return
	}

	c.interact(models.InteractInitiated, models.SubtypeNone, m.action)
	res.Enter(models.StateInFlight)
	resp, callErr := c.withLoader(ctx, m.call)
	result := models.ClassifyMutation(resp, callErr)
	res.Outcome = result.Outcome
	res.Rejected = result.Rejected
	if result.Err != nil {
		res.Error = result.Err.Error()
	}

	switch result.Outcome {
	case models.OutcomeSuccess:
		res.Enter(models.StateSuccess)
		c.interact(models.InteractSuccess, models.SubtypeNone, m.action)
		c.deps.Toaster.ShowToast(c.translate(m.successKey, m.params))
		logrus.WithFields(fields).Info("✅ Group action completed")
		if m.onSuccess != nil {
			m.onSuccess(ctx)
		}
	case models.OutcomeStructuredRejection:
		res.Enter(models.StatePartialError)
		c.deps.Toaster.ShowToast(c.translate(m.errorKey, m.params))
		logrus.WithFields(fields).WithField("rejected", result.Rejected).Warn("⚠ Group action rejected by service")
	default:
		res.Enter(models.StateFatalError)
		c.deps.Toaster.ShowToast(c.translate(m.errorKey, m.params))
		logrus.WithError(result.Err).WithFields(fields).Error("✗ Group action failed")
	}
	res.Enter(models.StateIdle)
}

// withLoader runs call behind a loader that is dismissed on every path.
func (c *Controller) withLoader(ctx context.Context, call func(ctx context.Context) (*models.MutationResponse, error)) (*models.MutationResponse, error) {
	loader := c.deps.Loaders.GetLoader()
	loader.Present()
	defer loader.Dismiss()
	return call(ctx)
}

// reload refreshes the group after a member or activity change.
func (c *Controller) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		logrus.WithError(err).WithField("group_id", c.groupID).Warn("⚠ Reload after action failed")
	}
}

func (c *Controller) deleteGroup() mutation {
	return mutation{
		action:     models.ActionDeleteGroup,
		titleKey:   "DELETE_GROUP_POPUP_TITLE",
		buttonKey:  "REMOVE",
		descKey:    "DELETE_GROUP_DESC",
		successKey: "DELETE_GROUP_SUCCESS_MSG",
		errorKey:   "DELETE_GROUP_ERROR_MSG",
		params:     map[string]string{"group_name": c.groupName()},
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.DeleteByID(ctx, c.groupID)
		},
		onSuccess: func(context.Context) { c.deps.Navigator.Back() },
	}
}

func (c *Controller) leaveGroup() mutation {
	return mutation{
		action:     models.ActionLeaveGroup,
		titleKey:   "LEAVE_GROUP_POPUP_TITLE",
		buttonKey:  "LEAVE_GROUP",
		descKey:    "LEAVE_GROUP_POPUP_DESC",
		successKey: "LEAVE_GROUP_SUCCESS_MSG",
		errorKey:   "LEAVE_GROUP_ERROR_MSG",
		params:     map[string]string{"group_name": c.groupName()},
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.RemoveMembers(ctx, c.groupID, []string{c.viewerID})
		},
		onSuccess: func(context.Context) { c.deps.Navigator.Back() },
	}
}

func (c *Controller) makeGroupAdmin(member models.GroupMember) mutation {
	return mutation{
		action:     models.ActionMakeGroupAdmin,
		titleKey:   "MAKE_GROUP_ADMIN_POPUP_TITLE",
		buttonKey:  "MAKE_ADMIN",
		descKey:    "MAKE_GROUP_ADMIN_POPUP_DESC",
		successKey: "MAKE_GROUP_ADMIN_SUCCESS_MSG",
		errorKey:   "MAKE_GROUP_ADMIN_ERROR_MSG",
		params:     map[string]string{"member_name": member.Name},
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.UpdateMembers(ctx, c.groupID, []models.MemberRoleUpdate{{UserID: member.UserID, Role: models.RoleAdmin}})
		},
		onSuccess: c.reload,
	}
}

func (c *Controller) dismissGroupAdmin(member models.GroupMember) mutation {
	return mutation{
		action:     models.ActionDismissGroupAdmin,
		titleKey:   "DISMISS_AS_GROUP_ADMIN_POPUP_TITLE",
		buttonKey:  "DISMISS_AS_GROUP_ADMIN",
		descKey:    "DISMISS_AS_GROUP_ADMIN_POPUP_DESC",
		successKey: "DISMISS_AS_GROUP_ADMIN_SUCCESS_MSG",
		errorKey:   "DISMISS_AS_GROUP_ADMIN_ERROR_MSG",
		params:     map[string]string{"member_name": member.Name},
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.UpdateMembers(ctx, c.groupID, []models.MemberRoleUpdate{{UserID: member.UserID, Role: models.RoleMember}})
		},
		onSuccess: c.reload,
	}
}

func (c *Controller) removeMember(member models.GroupMember) mutation {
	return mutation{
		action:     models.ActionRemoveMember,
		titleKey:   "REMOVE_MEMBER_POPUP_TITLE",
		buttonKey:  "REMOVE_MEMBER",
		descKey:    "REMOVE_MEMBER_GROUP_DESC",
		successKey: "REMOVE_MEMBER_SUCCESS_MSG",
		errorKey:   "REMOVE_MEMBER_ERROR_MSG",
		params:     map[string]string{"member_name": member.Name},
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.RemoveMembers(ctx, c.groupID, []string{member.UserID})
		},
		onSuccess: c.reload,
	}
}

func (c *Controller) removeActivity(activity models.GroupActivity) mutation {
	return mutation{
		action:     models.ActionRemoveActivity,
		titleKey:   "REMOVE_ACTIVITY_POPUP_TITLE",
		buttonKey:  "REMOVE_ACTIVITY",
		descKey:    "REMOVE_ACTIVITY_GROUP_DESC",
		successKey: "REMOVE_ACTIVITY_SUCCESS_MSG",
		errorKey:   "REMOVE_ACTIVITY_ERROR_MSG",
		call: func(ctx context.Context) (*models.MutationResponse, error) {
			return c.deps.Groups.RemoveActivities(ctx, c.groupID, []string{activity.ID})
		},
		onSuccess: c.reload,
	}
}
