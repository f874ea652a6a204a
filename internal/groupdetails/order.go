package groupdetails

import (
	"sort"

	"github.com/daniloc96/group-console/internal/models"
)

// OrderMembers returns members in display order: the viewer first, then
// admins, then everyone else. Ties keep their source order. The input slice
// is not modified.
func OrderMembers(members []models.GroupMember, viewerID string) []models.GroupMember {
	ordered := make([]models.GroupMember, len(members))
	copy(ordered, members)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank(ordered[i], viewerID) < rank(ordered[j], viewerID)
	})
	return ordered
}

func rank(m models.GroupMember, viewerID string) int {
	switch {
	case viewerID != "" && m.UserID == viewerID:
		return 0
	case m.IsAdmin():
		return 1
	default:
		return 2
	}
}
