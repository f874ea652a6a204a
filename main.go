package main

import (
	"context"
	"fmt"

	"github.com/daniloc96/group-console/cmd"
	"github.com/daniloc96/group-console/internal/app"
	"github.com/daniloc96/group-console/internal/config"
	"github.com/daniloc96/group-console/internal/console"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd.SetLambdaHandler(HandleRequest)
	cmd.SetSessionFactory(app.NewSession)
	cmd.Execute()
}

// HandleRequest is the AWS Lambda handler. It runs one action against a
// group, confirming it without a prompt.
func HandleRequest(ctx context.Context, event models.ActionEvent) (*models.ActionResponse, error) {
	if err := event.Validate(); err != nil {
		return models.NewInvalidEventResponse(err), nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return models.NewErrorResponse(err), nil
	}
	if err := config.Validate(cfg); err != nil {
		return models.NewErrorResponse(err), nil
	}
	if event.ViewerID == "" && cfg.Viewer.UserID == "" {
		return models.NewInvalidEventResponse(fmt.Errorf("viewer_id is required")), nil
	}

	result, err := runAction(ctx, cfg, event)
	if err != nil {
		return models.NewErrorResponse(err), nil
	}

	return models.NewActionResponse(result), nil
}

var runAction = func(ctx context.Context, cfg *config.Config, event models.ActionEvent) (*models.WorkflowResult, error) {
	action := event.ActionID()
	session, err := app.NewSession(ctx, cfg, app.Options{
		GroupID:  event.GroupID,
		ViewerID: event.ViewerID,
		Locale:   event.Locale,
		Popovers: console.AutoPopover{Select: models.MenuTagFor(action), Confirm: true},
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), app.FlushTimeout)
		defer cancel()
		if err := session.Close(flushCtx); err != nil {
			logrus.WithError(err).Warn("⚠ Telemetry flush failed")
		}
	}()

	c := session.Controller
	logrus.WithFields(logrus.Fields{
		"group_id": event.GroupID,
		"action":   action,
	}).Info("🚀 Running group action")

	var res models.WorkflowResult
	switch action {
	case models.ActionDeleteGroup, models.ActionLeaveGroup:
		res = c.GroupMenuClick(ctx)
	case models.ActionMakeGroupAdmin, models.ActionDismissGroupAdmin, models.ActionRemoveMember:
		member := c.Group().FindMember(event.MemberID)
		if member == nil {
			return nil, fmt.Errorf("member %s is not part of group %s", event.MemberID, event.GroupID)
		}
		res = c.MemberMenuClick(ctx, *member)
	case models.ActionRemoveActivity:
		activity := c.Group().FindActivity(event.ActivityID)
		if activity == nil {
			return nil, fmt.Errorf("activity %s is not part of group %s", event.ActivityID, event.GroupID)
		}
		res = c.ActivityMenuClick(ctx, *activity)
	default:
		return nil, fmt.Errorf("unsupported action %q", event.Action)
	}
	return &res, nil
}
