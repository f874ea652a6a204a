package groupdetails

import (
	"context"
	"errors"
	"testing"

	"github.com/daniloc96/group-console/internal/models"
)

func statePath(states ...models.WorkflowState) string {
	res := models.WorkflowResult{States: states}
	return res.Path()
}

func TestLeaveGroupSuccess(t *testing.T) {
	f := newFixture(t, "u-member")
	var removed []string
	f.groups.RemoveMembersFunc = func(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error) {
		removed = userIDs
		return &models.MutationResponse{}, nil
	}
	f.popovers.selects(models.MenuLeaveGroup, true)

	res := f.controller.GroupMenuClick(context.Background())

	want := statePath(models.StateIdle, models.StateMenuOpen, models.StateConfirmOpen, models.StateNetworkCheck,
		models.StateInFlight, models.StateSuccess, models.StateIdle)
	if res.Path() != want {
		t.Fatalf("expected path %s, got %s", want, res.Path())
	}
	if !res.Succeeded() || !res.Confirmed || res.Action != models.ActionLeaveGroup {
		t.Fatalf("unexpected result %#v", res)
	}
	if got := f.telemetry.InteractTypes(); !equalStrings(got, []string{"TOUCH", "INITIATED", "SUCCESS"}) {
		t.Fatalf("expected TOUCH, INITIATED, SUCCESS, got %v", got)
	}
	interacts := f.telemetry.Interacts()
	if interacts[0].Subtype != string(models.SubtypeLeaveGroupClicked) {
		t.Fatalf("expected leave subtype, got %s", interacts[0].Subtype)
	}
	if interacts[1].ObjectID != models.ActionLeaveGroup || interacts[2].ObjectID != models.ActionLeaveGroup {
		t.Fatalf("expected leave-group object id, got %s/%s", interacts[1].ObjectID, interacts[2].ObjectID)
	}
	if interacts[2].GroupID() != "g-1" || interacts[2].PageID != models.PageGroupDetail {
		t.Fatalf("expected group correlation on events, got %#v", interacts[2])
	}
	if !equalStrings(removed, []string{"u-member"}) {
		t.Fatalf("expected viewer to be removed, got %v", removed)
	}
	if len(f.toaster.toasts) != 1 || f.toaster.toasts[0] != "LEAVE_GROUP_SUCCESS_MSG(group_name=Science Club)" {
		t.Fatalf("unexpected toasts %v", f.toaster.toasts)
	}
	if f.navigator.backs != 1 {
		t.Fatalf("expected one back navigation, got %d", f.navigator.backs)
	}
	if f.loader.presented != 1 || f.loader.dismissed != 1 {
		t.Fatalf("expected loader presented and dismissed once, got %d/%d", f.loader.presented, f.loader.dismissed)
	}
}

func TestLeaveGroupTransportFailure(t *testing.T) {
	f := newFixture(t, "u-member")
	f.groups.RemoveMembersFunc = func(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error) {
		return nil, &models.TransportError{Op: "update group", Err: errors.New("connection reset")}
	}
	f.popovers.selects(models.MenuLeaveGroup, true)

	res := f.controller.GroupMenuClick(context.Background())

	if res.Final() != models.StateFatalError || res.Outcome != models.OutcomeTransportFailure {
		t.Fatalf("expected fatal error, got %s (%s)", res.Final(), res.Outcome)
	}
	if res.Error == "" {
		t.Fatalf("expected error message to be recorded")
	}
	if got := f.telemetry.InteractTypes(); !equalStrings(got, []string{"TOUCH", "INITIATED"}) {
		t.Fatalf("expected TOUCH, INITIATED, got %v", got)
	}
	if len(f.toaster.toasts) != 1 || f.toaster.toasts[0] != "LEAVE_GROUP_ERROR_MSG(group_name=Science Club)" {
		t.Fatalf("unexpected toasts %v", f.toaster.toasts)
	}
	if f.loader.dismissed != 1 {
		t.Fatalf("expected loader to be dismissed, got %d", f.loader.dismissed)
	}
	if f.navigator.backs != 0 {
		t.Fatalf("expected no navigation, got %d backs", f.navigator.backs)
	}
}

func TestActionOffline(t *testing.T) {
	f := newFixture(t, "u-member")
	f.network.online = false
	f.popovers.selects(models.MenuLeaveGroup, true)

	res := f.controller.GroupMenuClick(context.Background())

	if !res.Offline || !res.Confirmed {
		t.Fatalf("expected confirmed offline result, got %#v", res)
	}
	if res.Final() != models.StateNetworkCheck {
		t.Fatalf("expected to stop at network check, got %s", res.Final())
	}
	if f.groups.CallCount("RemoveMembers") != 0 {
		t.Fatalf("expected no remote call while offline")
	}
	if len(f.toaster.offlineToasts) != 1 || f.toaster.offlineToasts[0] != offlineMessageKey {
		t.Fatalf("expected one offline toast, got %v", f.toaster.offlineToasts)
	}
	if len(f.toaster.toasts) != 0 {
		t.Fatalf("expected no other toasts, got %v", f.toaster.toasts)
	}
	if got := f.telemetry.InteractTypes(); !equalStrings(got, []string{"TOUCH"}) {
		t.Fatalf("expected TOUCH only, got %v", got)
	}
	if f.loader.presented != 0 {
		t.Fatalf("expected no loader while offline")
	}
}

func TestActionCancelled(t *testing.T) {
	tests := []struct {
		name    string
		confirm *models.PopoverResult
		err     error
	}{
		{name: "right button", confirm: &models.PopoverResult{IsLeftButtonClicked: false}},
		{name: "dismissed", confirm: nil},
		{name: "popover error", err: errors.New("closed")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "u-member")
			f.popovers.menuResults = []*models.PopoverResult{{SelectedItem: models.MenuLeaveGroup}}
			if tt.confirm != nil {
				f.popovers.confirmResults = []*models.PopoverResult{tt.confirm}
			}
			f.popovers.confirmErr = tt.err

			res := f.controller.GroupMenuClick(context.Background())

			if res.Confirmed || res.Final() != models.StateCancelled {
				t.Fatalf("expected cancelled result, got %s", res.Path())
			}
			if f.groups.CallCount("RemoveMembers") != 0 {
				t.Fatalf("expected no remote call")
			}
			if got := f.telemetry.InteractTypes(); !equalStrings(got, []string{"TOUCH"}) {
				t.Fatalf("expected TOUCH only, got %v", got)
			}
			if len(f.toaster.toasts)+len(f.toaster.offlineToasts) != 0 {
				t.Fatalf("expected no toasts")
			}
		})
	}
}

func TestConfirmTranslationOrder(t *testing.T) {
	f := newFixture(t, "u-member")
	f.popovers.selects(models.MenuLeaveGroup, false)

	f.controller.GroupMenuClick(context.Background())

	want := []string{"LEAVE_GROUP_POPUP_TITLE", "LEAVE_GROUP", "LEAVE_GROUP_POPUP_DESC"}
	if !equalStrings(f.translator.keys, want) {
		t.Fatalf("expected translation order %v, got %v", want, f.translator.keys)
	}
	req := f.popovers.confirmRequests[0]
	if req.Title != "LEAVE_GROUP_POPUP_TITLE" || req.ButtonLabel != "LEAVE_GROUP" {
		t.Fatalf("unexpected confirm request %#v", req)
	}
	if req.Description != "LEAVE_GROUP_POPUP_DESC(group_name=Science Club)" {
		t.Fatalf("expected group name in description, got %q", req.Description)
	}
}

func TestMenuSelectionIgnored(t *testing.T) {
	tests := []struct {
		name   string
		result *models.PopoverResult
		err    error
	}{
		{name: "dismissed", result: nil},
		{name: "empty selection", result: &models.PopoverResult{}},
		{name: "unknown tag", result: &models.PopoverResult{SelectedItem: "MENU_SOMETHING_ELSE"}},
		{name: "tag not offered", result: &models.PopoverResult{SelectedItem: models.MenuDeleteGroup}},
		{name: "popover error", err: errors.New("closed")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "u-member")
			if tt.result != nil {
				f.popovers.menuResults = []*models.PopoverResult{tt.result}
			}
			f.popovers.menuErr = tt.err

			res := f.controller.GroupMenuClick(context.Background())

			want := statePath(models.StateIdle, models.StateMenuOpen, models.StateIdle)
			if res.Path() != want {
				t.Fatalf("expected path %s, got %s", want, res.Path())
			}
			if len(f.telemetry.Events) != 0 {
				t.Fatalf("expected no telemetry, got %v", f.telemetry.Events)
			}
			if len(f.popovers.confirmRequests) != 0 {
				t.Fatalf("expected no confirm popover")
			}
			if f.groups.CallCount("DeleteByID") != 0 {
				t.Fatalf("expected no remote call")
			}
		})
	}
}

func TestDeleteGroupByCreator(t *testing.T) {
	f := newFixture(t, "u-creator")
	f.popovers.selects(models.MenuDeleteGroup, true)

	res := f.controller.GroupMenuClick(context.Background())

	if !res.Succeeded() || res.Action != models.ActionDeleteGroup {
		t.Fatalf("expected delete to succeed, got %#v", res)
	}
	if f.groups.CallCount("DeleteByID") != 1 {
		t.Fatalf("expected one delete call, got %d", f.groups.CallCount("DeleteByID"))
	}
	interacts := f.telemetry.Interacts()
	if interacts[0].Subtype != string(models.SubtypeDeleteGroupClicked) || interacts[2].ObjectID != models.ActionDeleteGroup {
		t.Fatalf("unexpected telemetry %#v", interacts)
	}
	if f.navigator.backs != 1 {
		t.Fatalf("expected back navigation after delete")
	}
	if f.popovers.confirmRequests[0].ButtonLabel != "REMOVE" {
		t.Fatalf("expected REMOVE button, got %s", f.popovers.confirmRequests[0].ButtonLabel)
	}
}

func TestEditGroupNavigates(t *testing.T) {
	f := newFixture(t, "u-admin")
	f.popovers.menuResults = []*models.PopoverResult{{SelectedItem: models.MenuEditGroupDetails}}

	res := f.controller.GroupMenuClick(context.Background())

	if res.Selected != models.MenuEditGroupDetails || res.Confirmed {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(f.popovers.confirmRequests) != 0 {
		t.Fatalf("expected no confirmation for edit")
	}
	if len(f.navigator.navigations) != 1 || f.navigator.navigations[0].route != models.RouteCreateEditGroup {
		t.Fatalf("expected create-edit navigation, got %#v", f.navigator.navigations)
	}
	state := f.navigator.navigations[0].state
	if state.GroupDetails == nil || state.GroupDetails.Name != "Science Club" || len(state.CorRelation) != 1 {
		t.Fatalf("unexpected navigation state %#v", state)
	}
	interacts := f.telemetry.Interacts()
	if len(interacts) != 1 || interacts[0].Subtype != string(models.SubtypeEditGroupClicked) {
		t.Fatalf("expected edit touch event, got %#v", interacts)
	}
}

func TestMakeGroupAdminStructuredRejection(t *testing.T) {
	f := newFixture(t, "u-admin")
	f.groups.UpdateMembersFunc = func(ctx context.Context, groupID string, updates []models.MemberRoleUpdate) (*models.MutationResponse, error) {
		return &models.MutationResponse{Error: map[string][]string{"members": {"u-other"}}}, nil
	}
	f.popovers.selects(models.MenuMakeGroupAdmin, true)

	res := f.controller.MemberMenuClick(context.Background(), models.GroupMember{UserID: "u-other", Name: "Luca", Role: models.RoleMember})

	if res.Final() != models.StatePartialError || res.Outcome != models.OutcomeStructuredRejection {
		t.Fatalf("expected partial error, got %s", res.Path())
	}
	if len(res.Rejected["members"]) != 1 {
		t.Fatalf("expected rejected members, got %v", res.Rejected)
	}
	if got := f.telemetry.InteractTypes(); !equalStrings(got, []string{"TOUCH", "INITIATED"}) {
		t.Fatalf("expected no SUCCESS event, got %v", got)
	}
	if f.toaster.toasts[0] != "MAKE_GROUP_ADMIN_ERROR_MSG(member_name=Luca)" {
		t.Fatalf("unexpected toast %q", f.toaster.toasts[0])
	}
	if f.groups.CallCount("GetByID") != 1 {
		t.Fatalf("expected no reload after rejection")
	}
}

func TestMakeGroupAdminEmptyErrorMapIsSuccess(t *testing.T) {
	f := newFixture(t, "u-admin")
	var updates []models.MemberRoleUpdate
	f.groups.UpdateMembersFunc = func(ctx context.Context, groupID string, u []models.MemberRoleUpdate) (*models.MutationResponse, error) {
		updates = u
		return &models.MutationResponse{Error: map[string][]string{"members": nil}}, nil
	}
	f.popovers.selects(models.MenuMakeGroupAdmin, true)

	res := f.controller.MemberMenuClick(context.Background(), models.GroupMember{UserID: "u-other", Name: "Luca", Role: models.RoleMember})

	if !res.Succeeded() {
		t.Fatalf("expected success, got %s", res.Path())
	}
	if len(updates) != 1 || updates[0].UserID != "u-other" || updates[0].Role != models.RoleAdmin {
		t.Fatalf("unexpected updates %#v", updates)
	}
	if f.groups.CallCount("GetByID") != 2 {
		t.Fatalf("expected reload after success, got %d loads", f.groups.CallCount("GetByID"))
	}
	if f.navigator.backs != 0 {
		t.Fatalf("expected to stay on the page")
	}
}

func TestDismissGroupAdmin(t *testing.T) {
	f := newFixture(t, "u-creator")
	var updates []models.MemberRoleUpdate
	f.groups.UpdateMembersFunc = func(ctx context.Context, groupID string, u []models.MemberRoleUpdate) (*models.MutationResponse, error) {
		updates = u
		return &models.MutationResponse{}, nil
	}
	f.popovers.selects(models.MenuDismissAsGroupAdmin, true)

	res := f.controller.MemberMenuClick(context.Background(), models.GroupMember{UserID: "u-admin", Name: "Anna", Role: models.RoleAdmin})

	if !res.Succeeded() || res.Action != models.ActionDismissGroupAdmin {
		t.Fatalf("expected dismiss to succeed, got %#v", res)
	}
	if len(updates) != 1 || updates[0].Role != models.RoleMember {
		t.Fatalf("expected demotion to member, got %#v", updates)
	}
	if f.popovers.menuRequests[0].Items[0] != models.MenuDismissAsGroupAdmin {
		t.Fatalf("expected admin member menu, got %v", f.popovers.menuRequests[0].Items)
	}
}

func TestRemoveMember(t *testing.T) {
	f := newFixture(t, "u-admin")
	var removed []string
	f.groups.RemoveMembersFunc = func(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error) {
		removed = userIDs
		return &models.MutationResponse{}, nil
	}
	f.popovers.selects(models.MenuRemoveFromGroup, true)

	res := f.controller.MemberMenuClick(context.Background(), models.GroupMember{UserID: "u-other", Name: "Luca"})

	if !res.Succeeded() || res.Action != models.ActionRemoveMember {
		t.Fatalf("expected remove to succeed, got %#v", res)
	}
	if !equalStrings(removed, []string{"u-other"}) {
		t.Fatalf("expected u-other removed, got %v", removed)
	}
	if f.toaster.toasts[0] != "REMOVE_MEMBER_SUCCESS_MSG(member_name=Luca)" {
		t.Fatalf("unexpected toast %q", f.toaster.toasts[0])
	}
}

func TestMemberMenuRequiresPermission(t *testing.T) {
	f := newFixture(t, "u-member")
	f.popovers.selects(models.MenuRemoveFromGroup, true)

	res := f.controller.MemberMenuClick(context.Background(), models.GroupMember{UserID: "u-other", Name: "Luca"})

	if len(res.States) != 1 || len(f.popovers.menuRequests) != 0 {
		t.Fatalf("expected no menu for non-admin viewer, got %s", res.Path())
	}
	if f.groups.CallCount("RemoveMembers") != 0 {
		t.Fatalf("expected no remote call")
	}
}

func TestRemoveActivity(t *testing.T) {
	f := newFixture(t, "u-admin")
	var removed []string
	f.groups.RemoveActivitiesFunc = func(ctx context.Context, groupID string, activityIDs []string) (*models.MutationResponse, error) {
		removed = activityIDs
		return &models.MutationResponse{}, nil
	}
	f.popovers.selects(models.MenuRemoveFromGroup, true)

	res := f.controller.ActivityMenuClick(context.Background(), f.controller.ActivityList()[0])

	if !res.Succeeded() || res.Action != models.ActionRemoveActivity {
		t.Fatalf("expected remove activity to succeed, got %#v", res)
	}
	if !equalStrings(removed, []string{"a-1"}) {
		t.Fatalf("expected a-1 removed, got %v", removed)
	}
	if f.groups.CallCount("GetByID") != 2 {
		t.Fatalf("expected reload after success")
	}

	nonAdmin := newFixture(t, "u-member")
	nonAdmin.popovers.selects(models.MenuRemoveFromGroup, true)
	nonAdmin.controller.ActivityMenuClick(context.Background(), nonAdmin.controller.ActivityList()[0])
	if nonAdmin.groups.CallCount("RemoveActivities") != 0 || len(nonAdmin.popovers.menuRequests) != 0 {
		t.Fatalf("expected activity menu to be unavailable for non-admins")
	}
}
