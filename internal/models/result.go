package models

import "fmt"

// GroupSummary is a compact view of a loaded group, as printed by the CLI.
type GroupSummary struct {
	GroupID         string            `json:"group_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Status          GroupEntityStatus `json:"status,omitempty"`
	CreatedBy       string            `json:"created_by"`
	Members         int               `json:"members"`
	Admins          int               `json:"admins"`
	Activities      int               `json:"activities"`
	ViewerRole      GroupMemberRole   `json:"viewer_role,omitempty"`
	ViewerIsCreator bool              `json:"viewer_is_creator"`
}

// NewGroupSummary summarizes group as seen by viewerID.
func NewGroupSummary(group *GroupDetails, viewerID string) GroupSummary {
	if group == nil {
		return GroupSummary{}
	}
	s := GroupSummary{
		GroupID:         group.GroupID,
		Name:            group.Name,
		Description:     group.Description,
		Status:          group.Status,
		CreatedBy:       group.CreatedBy,
		Members:         len(group.Members),
		Activities:      len(group.Activities),
		ViewerIsCreator: viewerID != "" && viewerID == group.CreatedBy,
	}
	for _, m := range group.Members {
		if m.IsAdmin() {
			s.Admins++
		}
		if viewerID != "" && m.UserID == viewerID {
			s.ViewerRole = m.Role
		}
	}
	return s
}

// String returns a human-readable representation of the summary.
func (s GroupSummary) String() string {
	role := string(s.ViewerRole)
	if role == "" {
		role = "not a member"
	}
	if s.ViewerIsCreator {
		role += ", creator"
	}
	return fmt.Sprintf("%s (%s): %d members (%d admins), %d activities, you: %s",
		s.Name, s.GroupID, s.Members, s.Admins, s.Activities, role)
}
