package models

// MenuTag is an item of an overflow menu.
type MenuTag string

const (
	MenuEditGroupDetails    MenuTag = "MENU_EDIT_GROUP_DETAILS"
	MenuDeleteGroup         MenuTag = "MENU_DELETE_GROUP"
	MenuLeaveGroup          MenuTag = "MENU_LEAVE_GROUP"
	MenuMakeGroupAdmin      MenuTag = "MENU_MAKE_GROUP_ADMIN"
	MenuRemoveFromGroup     MenuTag = "MENU_REMOVE_FROM_GROUP"
	MenuDismissAsGroupAdmin MenuTag = "DISMISS_AS_GROUP_ADMIN"
)

// Menus shown by the group details view.
var (
	GroupCreatorMenu   = []MenuTag{MenuEditGroupDetails, MenuDeleteGroup}
	GroupAdminMenu     = []MenuTag{MenuEditGroupDetails, MenuLeaveGroup}
	GroupNonAdminMenu  = []MenuTag{MenuLeaveGroup}
	MemberNonAdminMenu = []MenuTag{MenuMakeGroupAdmin, MenuRemoveFromGroup}
	MemberAdminMenu    = []MenuTag{MenuDismissAsGroupAdmin, MenuRemoveFromGroup}
	ActivityMenu       = []MenuTag{MenuRemoveFromGroup}
)

// MenuTagFor returns the menu item that starts action.
func MenuTagFor(action ActionID) MenuTag {
	switch action {
	case ActionDeleteGroup:
		return MenuDeleteGroup
	case ActionLeaveGroup:
		return MenuLeaveGroup
	case ActionMakeGroupAdmin:
		return MenuMakeGroupAdmin
	case ActionDismissGroupAdmin:
		return MenuDismissAsGroupAdmin
	case ActionRemoveMember, ActionRemoveActivity:
		return MenuRemoveFromGroup
	}
	return ""
}

// MenuRequest asks the popover controller to present a choice menu.
type MenuRequest struct {
	Title string
	Items []MenuTag
}

// ConfirmRequest asks the popover controller to present a confirm/cancel dialog.
type ConfirmRequest struct {
	Title       string
	ButtonLabel string
	Description string
}

// PopoverResult is what a dismissed popover resolves with. A nil result means
// the popover was dismissed without data.
type PopoverResult struct {
	SelectedItem        MenuTag
	IsLeftButtonClicked bool
}
