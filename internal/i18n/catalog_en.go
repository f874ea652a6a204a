package i18n

// english is the built-in English catalog. Placeholders are named with
// braces and filled from TranslateMessage params.
var english = map[string]string{
	"YOU_ARE_NOT_CONNECTED_TO_THE_INTERNET": "You are not connected to the internet",
	"LOGGED_IN_MEMBER":                      "{member_name} (You)",
	"GROUP_ADMIN":                           "Group admin",
	"GROUP_CREATOR":                         "Group creator",
	"REMOVE":                                "Remove",
	"CANCEL":                                "Cancel",

	"MENU_EDIT_GROUP_DETAILS": "Edit group details",
	"MENU_DELETE_GROUP":       "Delete group",
	"MENU_LEAVE_GROUP":        "Leave group",
	"MENU_MAKE_GROUP_ADMIN":   "Make group admin",
	"MENU_REMOVE_FROM_GROUP":  "Remove from group",
	"DISMISS_AS_GROUP_ADMIN":  "Dismiss as group admin",

	"DELETE_GROUP_POPUP_TITLE": "Delete group?",
	"DELETE_GROUP_DESC":        "All members will lose access to {group_name}. This cannot be undone.",
	"DELETE_GROUP_SUCCESS_MSG": "{group_name} was deleted",
	"DELETE_GROUP_ERROR_MSG":   "Could not delete {group_name}. Try again later.",

	"LEAVE_GROUP":             "Leave group",
	"LEAVE_GROUP_POPUP_TITLE": "Leave group?",
	"LEAVE_GROUP_POPUP_DESC":  "You will no longer see activities of {group_name}.",
	"LEAVE_GROUP_SUCCESS_MSG": "You left {group_name}",
	"LEAVE_GROUP_ERROR_MSG":   "Could not leave {group_name}. Try again later.",

	"MAKE_ADMIN":                   "Make admin",
	"MAKE_GROUP_ADMIN_POPUP_TITLE": "Make group admin?",
	"MAKE_GROUP_ADMIN_POPUP_DESC":  "{member_name} will be able to manage members and activities.",
	"MAKE_GROUP_ADMIN_SUCCESS_MSG": "{member_name} is now a group admin",
	"MAKE_GROUP_ADMIN_ERROR_MSG":   "Could not make {member_name} a group admin",

	"DISMISS_AS_GROUP_ADMIN_POPUP_TITLE": "Dismiss as group admin?",
	"DISMISS_AS_GROUP_ADMIN_POPUP_DESC":  "{member_name} will no longer be able to manage this group.",
	"DISMISS_AS_GROUP_ADMIN_SUCCESS_MSG": "{member_name} is no longer a group admin",
	"DISMISS_AS_GROUP_ADMIN_ERROR_MSG":   "Could not dismiss {member_name} as group admin",

	"REMOVE_MEMBER":             "Remove member",
	"REMOVE_MEMBER_POPUP_TITLE": "Remove member?",
	"REMOVE_MEMBER_GROUP_DESC":  "{member_name} will be removed from this group.",
	"REMOVE_MEMBER_SUCCESS_MSG": "{member_name} was removed from the group",
	"REMOVE_MEMBER_ERROR_MSG":   "Could not remove {member_name} from the group",

	"REMOVE_ACTIVITY":             "Remove activity",
	"REMOVE_ACTIVITY_POPUP_TITLE": "Remove activity?",
	"REMOVE_ACTIVITY_GROUP_DESC":  "Removing the activity takes it off from the group for all members.",
	"REMOVE_ACTIVITY_SUCCESS_MSG": "Activity removed",
	"REMOVE_ACTIVITY_ERROR_MSG":   "Could not remove the activity",

	"ACTIVITY_COURSE_TITLE":   "Course",
	"ACTIVITY_TEXTBOOK_TITLE": "Digital textbook",
	"ACTIVITY_RESOURCE_TITLE": "Learning resource",
}
