package app

import (
	"context"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/daniloc96/group-console/internal/config"
	"github.com/daniloc96/group-console/internal/console"
	store "github.com/daniloc96/group-console/internal/dynamodb"
	"github.com/daniloc96/group-console/internal/groupapi"
	"github.com/daniloc96/group-console/internal/groupdetails"
	"github.com/daniloc96/group-console/internal/i18n"
	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/metrics"
	"github.com/daniloc96/group-console/internal/network"
	"github.com/daniloc96/group-console/internal/secrets"
	"github.com/daniloc96/group-console/internal/telemetry"
	"github.com/sirupsen/logrus"
)

// Options select the group and how the session interacts with the user.
type Options struct {
	GroupID string
	// ViewerID overrides viewer.user_id when set.
	ViewerID string
	// Locale overrides the configured locale when set.
	Locale string
	// Popovers defaults to a terminal popover on stdin.
	Popovers interfaces.PopoverController
}

// Session is a loaded group details controller with its adapters.
type Session struct {
	Controller *groupdetails.Controller
	Toaster    *console.Toaster
	Navigator  *console.Navigator
	Translator *i18n.Translator
	Events     interfaces.EventStore

	generator *telemetry.Generator
}

// Close flushes telemetry.
func (s *Session) Close(ctx context.Context) error {
	if s.generator == nil {
		return nil
	}
	return s.generator.Close(ctx)
}

// NewSession wires every adapter from cfg and loads the group.
func NewSession(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	if opts.GroupID == "" {
		return nil, fmt.Errorf("group id is required")
	}
	viewerID := cfg.Viewer.UserID
	if opts.ViewerID != "" {
		viewerID = opts.ViewerID
	}
	locale := cfg.Locale
	if opts.Locale != "" {
		locale = opts.Locale
	}

	groups, err := newGroupClient(ctx, cfg.GroupService)
	if err != nil {
		return nil, err
	}

	translator, err := i18n.NewTranslator(locale)
	if err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}

	var probe interfaces.NetworkInfo = network.Static(true)
	if cfg.Network.Probe {
		p, probeErr := network.NewProbe(cfg.GroupService.BaseURL)
		if probeErr != nil {
			return nil, fmt.Errorf("network probe: %w", probeErr)
		}
		probe = p
	}

	popovers := opts.Popovers
	if popovers == nil {
		popovers = console.NewPopover(os.Stdin, os.Stdout, int(os.Stdin.Fd()), translator)
	}

	s := &Session{
		Toaster:    &console.Toaster{},
		Navigator:  &console.Navigator{},
		Translator: translator,
	}

	var generator interfaces.TelemetryGenerator = telemetry.Discard{}
	if cfg.Telemetry.Enabled {
		s.Events = newEventStore(ctx, cfg.DynamoDB)
		s.generator = telemetry.NewGenerator(cfg.Telemetry.BufferSize, s.Events, newMetricsEmitter(ctx, cfg.CloudWatch))
		generator = s.generator
	}

	controller, err := groupdetails.NewController(opts.GroupID, viewerID, groupdetails.Dependencies{
		Groups:     groups,
		Telemetry:  generator,
		Translator: translator,
		Network:    probe,
		Navigator:  s.Navigator,
		Popovers:   popovers,
		Toaster:    s.Toaster,
		Loaders:    console.Loaders{},
	})
	if err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	s.Controller = controller

	if err := controller.Load(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	controller.Init()
	return s, nil
}

func newGroupClient(ctx context.Context, cfg config.GroupServiceConfig) (*groupapi.Client, error) {
	opts := groupapi.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	if cfg.HasClientCredentials() {
		opts.ClientID = cfg.ClientID
		opts.ClientSecret = cfg.ClientSecret
		opts.TokenURL = cfg.TokenURL
	} else {
		token, err := secrets.ResolveToken(secrets.TokenSource{
			Literal:    cfg.Token,
			SecretName: cfg.TokenSecret,
			FilePath:   cfg.TokenFile,
		})
		if err != nil {
			return nil, fmt.Errorf("group service token: %w", err)
		}
		opts.Token = token
	}
	return groupapi.NewClient(ctx, opts)
}

// newEventStore returns nil when the archive is disabled or unavailable.
func newEventStore(ctx context.Context, cfg config.DynamoDBConfig) interfaces.EventStore {
	if !cfg.Enabled {
		return nil
	}
	s, err := store.NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("⚠ DynamoDB store init failed, telemetry archive disabled")
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"table":    cfg.TableName,
		"region":   cfg.Region,
		"ttl_days": cfg.TTLDays,
	}).Info("✅ Telemetry archive enabled (DynamoDB)")
	return s
}

// newMetricsEmitter returns nil when counters are disabled or unavailable.
func newMetricsEmitter(ctx context.Context, cfg config.CloudWatchConfig) interfaces.MetricsEmitter {
	if !cfg.Enabled {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logrus.WithError(err).Warn("⚠ CloudWatch init failed, telemetry counters disabled")
		return nil
	}
	logrus.WithField("namespace", cfg.Namespace).Info("✅ Telemetry counters enabled (CloudWatch)")
	return metrics.NewEmitter(awsCfg, cfg.Namespace)
}

// FlushTimeout bounds how long Close may wait for telemetry.
const FlushTimeout = 10 * time.Second
