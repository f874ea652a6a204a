package models

// GroupMemberRole represents a member's role inside a group.
type GroupMemberRole string

const (
	RoleAdmin  GroupMemberRole = "admin"
	RoleMember GroupMemberRole = "member"
	RoleNone   GroupMemberRole = ""
)

// GroupEntityStatus represents the lifecycle status of a group or member.
type GroupEntityStatus string

const (
	StatusActive   GroupEntityStatus = "active"
	StatusInactive GroupEntityStatus = "inactive"
)

// GroupMember is a member account inside a group. UserID is unique within a group.
type GroupMember struct {
	GroupID string            `json:"groupId"`
	UserID  string            `json:"userId"`
	Name    string            `json:"name"`
	Role    GroupMemberRole   `json:"role"`
	Status  GroupEntityStatus `json:"status"`
}

// IsAdmin returns true if the member holds the admin role.
func (m GroupMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// ActivityInfo describes the content attached to a group as an activity.
type ActivityInfo struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
}

// GroupActivity is a content or course item attached to a group.
type GroupActivity struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	ActivityInfo ActivityInfo `json:"activityInfo"`
}

// GroupDetails is the group record returned by the group service.
type GroupDetails struct {
	GroupID     string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Status      GroupEntityStatus `json:"status,omitempty"`
	CreatedBy   string            `json:"createdBy"`
	Members     []GroupMember     `json:"members"`
	Activities  []GroupActivity   `json:"activities,omitempty"`
}

// Creator returns the member who created the group, if present in the member list.
func (g *GroupDetails) Creator() *GroupMember {
	if g == nil || g.CreatedBy == "" {
		return nil
	}
	return g.FindMember(g.CreatedBy)
}

// FindMember returns a copy of the member with the given user id, or nil.
func (g *GroupDetails) FindMember(userID string) *GroupMember {
	if g == nil {
		return nil
	}
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			m := g.Members[i]
			return &m
		}
	}
	return nil
}

// FindActivity returns a copy of the activity with the given id, or nil.
func (g *GroupDetails) FindActivity(id string) *GroupActivity {
	if g == nil {
		return nil
	}
	for i := range g.Activities {
		if g.Activities[i].ID == id {
			a := g.Activities[i]
			return &a
		}
	}
	return nil
}

// MemberRoleUpdate is a single role change sent to the group service.
type MemberRoleUpdate struct {
	UserID string          `json:"userId"`
	Role   GroupMemberRole `json:"role"`
}

// ActivityFilters narrows the content a supported activity can attach.
type ActivityFilters struct {
	ContentTypes []string `json:"contentTypes,omitempty"`
}

// SupportedActivity is one field of the supported-activities form.
type SupportedActivity struct {
	Index        int             `json:"index"`
	Title        string          `json:"title"`
	Desc         string          `json:"desc"`
	ActivityType string          `json:"activityType"`
	IsEnabled    bool            `json:"isEnabled"`
	Filters      ActivityFilters `json:"filters"`
}
