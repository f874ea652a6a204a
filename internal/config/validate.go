package config

import (
	"fmt"
	"net/url"
	"strings"
)

var logFormats = map[string]bool{"json": true, "text": true, "pretty": true}

// Validate ensures configuration is complete and well-formed.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var errs []string

	requireNonEmpty := func(value string, field string) {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
		}
	}

	requireURL := func(value string, field string) {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
			return
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s must be an http(s) URL", field))
		}
	}

	gs := cfg.GroupService
	requireURL(gs.BaseURL, "group_service.base_url")
	if gs.Timeout <= 0 {
		errs = append(errs, "group_service.timeout must be positive")
	}

	if gs.HasClientCredentials() {
		requireNonEmpty(gs.ClientID, "group_service.client_id")
		requireNonEmpty(gs.ClientSecret, "group_service.client_secret")
		requireURL(gs.TokenURL, "group_service.token_url")
	} else if cfg.IsLambda {
		requireNonEmpty(gs.TokenSecret, "group_service.token_secret")
	} else if gs.Token == "" && gs.TokenSecret == "" && gs.TokenFile == "" {
		errs = append(errs, "one of group_service.token, group_service.token_secret or group_service.token_file is required")
	}

	if !cfg.IsLambda {
		requireNonEmpty(cfg.Viewer.UserID, "viewer.user_id")
	}

	if !logFormats[cfg.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be json, text or pretty, got %q", cfg.Log.Format))
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.BufferSize <= 0 {
		errs = append(errs, "telemetry.buffer_size must be positive")
	}

	if cfg.DynamoDB.Enabled {
		requireNonEmpty(cfg.DynamoDB.TableName, "dynamodb.table_name")
		requireNonEmpty(cfg.DynamoDB.Region, "dynamodb.region")
		if cfg.DynamoDB.TTLDays <= 0 {
			errs = append(errs, "dynamodb.ttl_days must be positive")
		}
	}

	if cfg.CloudWatch.Enabled {
		requireNonEmpty(cfg.CloudWatch.Namespace, "cloudwatch.namespace")
		requireNonEmpty(cfg.CloudWatch.Region, "cloudwatch.region")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
