package models

// Routes the group details view can navigate to.
const (
	RouteCreateEditGroup       = "/my-groups/create-edit-group"
	RouteAddMemberToGroup      = "/my-groups/add-member-to-group"
	RouteAddActivityToGroup    = "/my-groups/group-details/add-activity-to-group"
	RouteActivityDetails       = "/my-groups/activity-details"
	RouteEnrolledCourseDetails = "/enrolled-course-details"
)

// NavigationState is the payload handed to the next screen.
type NavigationState struct {
	GroupID               string              `json:"groupId,omitempty"`
	GroupDetails          *GroupDetails       `json:"groupDetails,omitempty"`
	LoggedInUser          *GroupMember        `json:"loggedinUser,omitempty"`
	MemberList            []GroupMember       `json:"memberList,omitempty"`
	Activity              *GroupActivity      `json:"activity,omitempty"`
	Content               *ActivityInfo       `json:"content,omitempty"`
	SupportedActivityList []SupportedActivity `json:"supportedActivityList,omitempty"`
	ActivityList          []GroupActivity     `json:"activityList,omitempty"`
	CorRelation           []CorrelationData   `json:"corRelation,omitempty"`
}
