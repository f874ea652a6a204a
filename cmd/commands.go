package cmd

import (
	"context"
	"fmt"

	"github.com/daniloc96/group-console/internal/app"
	"github.com/daniloc96/group-console/internal/groupdetails"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagSearch       string
	flagHistoryLimit int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the group with its members and activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			c := s.Controller
			summary := models.NewGroupSummary(c.Group(), c.ViewerID())
			logrus.Info(summary.String())
			logrus.Info("────────────────────────────────────────")
			printMembers(c, c.MemberList())
			printActivities(c.ActivityList())
			logrus.Info("────────────────────────────────────────")
			return nil
		})
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List members, viewer first then admins",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			s.Controller.SwitchTab(groupdetails.TabMembers)
			printMembers(s.Controller, s.Controller.OnMemberSearch(flagSearch))
			return nil
		})
	},
}

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			s.Controller.SwitchTab(groupdetails.TabActivities)
			printActivities(s.Controller.OnActivitySearch(flagSearch))
			return nil
		})
	},
}

var groupMenuCmd = &cobra.Command{
	Use:   "group-menu",
	Short: "Open the group menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return reportWorkflow(s.Controller.GroupMenuClick(ctx))
		})
	},
}

var memberMenuCmd = &cobra.Command{
	Use:   "member-menu <userId>",
	Short: "Open the menu of a member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			member := s.Controller.Group().FindMember(args[0])
			if member == nil {
				return fmt.Errorf("member %s is not part of group %s", args[0], s.Controller.GroupID())
			}
			if !s.Controller.ShowMemberMenu(*member) {
				return fmt.Errorf("you cannot manage member %s", args[0])
			}
			return reportWorkflow(s.Controller.MemberMenuClick(ctx, *member))
		})
	},
}

var activityMenuCmd = &cobra.Command{
	Use:   "activity-menu <activityId>",
	Short: "Open the menu of an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			activity := s.Controller.Group().FindActivity(args[0])
			if activity == nil {
				return fmt.Errorf("activity %s is not part of group %s", args[0], s.Controller.GroupID())
			}
			return reportWorkflow(s.Controller.ActivityMenuClick(ctx, *activity))
		})
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add-member",
	Short: "Open the add-member screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			s.Controller.NavigateToAddUserPage()
			return nil
		})
	},
}

var addActivityCmd = &cobra.Command{
	Use:   "add-activity",
	Short: "List the activity types that can be added to the group",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.Controller.NavigateToAddActivityPage(ctx); err != nil {
				return err
			}
			visits := s.Navigator.Visits()
			if len(visits) == 0 {
				return nil
			}
			for _, a := range visits[len(visits)-1].State.SupportedActivityList {
				status := "enabled"
				if !a.IsEnabled {
					status = "disabled"
				}
				logrus.Infof("  %d. %s (%s, %s)", a.Index, a.Title, a.ActivityType, status)
			}
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent telemetry events recorded for the group",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if s.Events == nil {
				return fmt.Errorf("telemetry archive is disabled (set dynamodb.enabled)")
			}
			events, err := s.Events.ListGroupEvents(ctx, s.Controller.GroupID(), flagHistoryLimit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				logrus.Info("No events recorded")
				return nil
			}
			for _, e := range events {
				logrus.WithFields(e.LogFields()).Info(e.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return nil
		})
	},
}

func init() {
	membersCmd.Flags().StringVar(&flagSearch, "search", "", "Only show members whose name contains this text")
	activitiesCmd.Flags().StringVar(&flagSearch, "search", "", "Only show activities whose name contains this text")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of events to show")
}

func printMembers(c *groupdetails.Controller, members []models.GroupMember) {
	if len(members) == 0 {
		logrus.Info("👥 Members: (none)")
		return
	}
	logrus.Infof("👥 Members (%d):", len(members))
	for i, m := range members {
		role := ""
		if m.IsAdmin() {
			role = " [admin]"
		}
		logrus.Infof("  %d. (%s) %s%s", i+1, groupdetails.ExtractInitial(m.Name), c.MemberDisplayName(m), role)
	}
}

func printActivities(activities []models.GroupActivity) {
	if len(activities) == 0 {
		logrus.Info("📚 Activities: (none)")
		return
	}
	logrus.Infof("📚 Activities (%d):", len(activities))
	for i, a := range activities {
		logrus.Infof("  %d. %s (%s) id=%s", i+1, a.ActivityInfo.Name, a.Type, a.ID)
	}
}
