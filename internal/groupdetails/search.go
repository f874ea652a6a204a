package groupdetails

import (
	"github.com/daniloc96/group-console/internal/filter"
	"github.com/daniloc96/group-console/internal/models"
)

// OnMemberSearch narrows the displayed members to those whose name contains query.
func (c *Controller) OnMemberSearch(query string) []models.GroupMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filteredMemberList = filter.Transform(c.memberList, query, func(m models.GroupMember) string {
		return m.Name
	})
	return cloneMembers(c.filteredMemberList)
}

// OnActivitySearch narrows the displayed activities to those whose name contains query.
func (c *Controller) OnActivitySearch(query string) []models.GroupActivity {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filteredActivityList = filter.Transform(c.activityList, query, func(a models.GroupActivity) string {
		return a.ActivityInfo.Name
	})
	return cloneActivities(c.filteredActivityList)
}
