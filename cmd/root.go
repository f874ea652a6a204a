package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/daniloc96/group-console/internal/app"
	"github.com/daniloc96/group-console/internal/config"
	"github.com/daniloc96/group-console/internal/console"
	"github.com/daniloc96/group-console/internal/log"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SessionFactory builds a loaded group session.
type SessionFactory func(ctx context.Context, cfg *config.Config, opts app.Options) (*app.Session, error)

var (
	cfgFile       string
	flagGroupID   string
	flagViewer    string
	flagLocale    string
	flagBaseURL   string
	flagToken     string
	flagTokenFile string
	flagNoProbe   bool
	flagSelect    string
	flagYes       bool
	flagLogLevel  string
	flagLogFormat string

	lambdaHandler func(ctx context.Context, event models.ActionEvent) (*models.ActionResponse, error)
	newSession    SessionFactory
)

// SetLambdaHandler registers the Lambda handler used in Lambda mode.
func SetLambdaHandler(handler func(ctx context.Context, event models.ActionEvent) (*models.ActionResponse, error)) {
	lambdaHandler = handler
}

// SetSessionFactory registers the session builder used by the CLI.
func SetSessionFactory(factory SessionFactory) {
	newSession = factory
}

var rootCmd = &cobra.Command{
	Use:           "groupctl",
	Short:         "Inspect a group and manage its members and activities",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI or Lambda handler depending on environment.
func Execute() {
	if isLambda() {
		if lambdaHandler == nil {
			logrus.Fatal("lambda handler is not configured")
		}
		lambda.Start(lambdaHandler)
		return
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&flagGroupID, "group", "g", "", "Group id")
	rootCmd.PersistentFlags().StringVar(&flagViewer, "viewer", "", "User id of the signed-in user")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Message locale")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Group service base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Group service bearer token")
	rootCmd.PersistentFlags().StringVar(&flagTokenFile, "token-file", "", "File holding the group service bearer token")
	rootCmd.PersistentFlags().BoolVar(&flagNoProbe, "no-probe", false, "Assume the network is available")
	rootCmd.PersistentFlags().StringVar(&flagSelect, "select", "", "Menu item to pick without prompting (e.g. MENU_LEAVE_GROUP)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Confirm without prompting (with --select)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: pretty, text or json")

	rootCmd.AddCommand(showCmd, membersCmd, activitiesCmd, groupMenuCmd, memberMenuCmd, activityMenuCmd, addMemberCmd, addActivityCmd, historyCmd)
}

func isLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func overrideConfigFromFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("viewer") {
		cfg.Viewer.UserID = flagViewer
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = flagLocale
	}
	if cmd.Flags().Changed("base-url") {
		cfg.GroupService.BaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("token") {
		cfg.GroupService.Token = flagToken
	}
	if cmd.Flags().Changed("token-file") {
		cfg.GroupService.TokenFile = flagTokenFile
	}
	if cmd.Flags().Changed("no-probe") {
		cfg.Network.Probe = !flagNoProbe
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
}

// loadConfig reads, overrides and validates configuration, then configures
// the global logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	overrideConfigFromFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logger := log.NewLogger(cfg.Log.Level, cfg.Log.Format)
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(logger.Level)
	logrus.SetOutput(logger.Out)
	return cfg, nil
}

// withSession runs fn against a loaded session and flushes telemetry after.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *app.Session) error) error {
	if flagGroupID == "" {
		return fmt.Errorf("--group is required")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if newSession == nil {
		return fmt.Errorf("session factory is not configured")
	}

	opts := app.Options{GroupID: flagGroupID}
	if flagSelect != "" {
		opts.Popovers = console.AutoPopover{Select: models.MenuTag(flagSelect), Confirm: flagYes}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	session, err := newSession(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), app.FlushTimeout)
		defer cancel()
		if err := session.Close(flushCtx); err != nil {
			logrus.WithError(err).Warn("⚠ Telemetry flush failed")
		}
	}()

	return fn(ctx, session)
}

// reportWorkflow logs the outcome of a menu interaction and turns failed
// mutations into an error.
func reportWorkflow(res models.WorkflowResult) error {
	fields := logrus.Fields{
		"path":      res.Path(),
		"confirmed": res.Confirmed,
	}
	if res.Action != models.ActionNone {
		fields["action"] = res.Action
	}
	if res.Outcome != "" {
		fields["outcome"] = res.Outcome
	}

	switch res.Final() {
	case models.StateSuccess:
		logrus.WithFields(fields).Info("🏁 Action completed")
	case models.StatePartialError, models.StateFatalError:
		logrus.WithFields(fields).Error("🏁 Action failed")
		return fmt.Errorf("%s failed: %s", res.Action, res.Error)
	default:
		logrus.WithFields(fields).Info("🏁 No action taken")
	}
	return nil
}
