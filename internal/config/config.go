package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration from file, environment variables, and defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("group_service.timeout", 30*time.Second)
	v.SetDefault("locale", "en")
	v.SetDefault("network.probe", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "pretty")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.buffer_size", 256)
	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.table_name", "group-telemetry")
	v.SetDefault("dynamodb.region", "eu-west-1")
	v.SetDefault("dynamodb.ttl_days", 30)
	v.SetDefault("cloudwatch.enabled", false)
	v.SetDefault("cloudwatch.namespace", "GroupConsole")
	v.SetDefault("cloudwatch.region", "eu-west-1")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("group_service.base_url", "GROUP_SERVICE_BASE_URL")
	_ = v.BindEnv("group_service.token", "GROUP_SERVICE_TOKEN")
	_ = v.BindEnv("group_service.token_secret", "GROUP_SERVICE_TOKEN_SECRET")
	_ = v.BindEnv("group_service.token_file", "GROUP_SERVICE_TOKEN_FILE")
	_ = v.BindEnv("group_service.client_id", "GROUP_SERVICE_CLIENT_ID")
	_ = v.BindEnv("group_service.client_secret", "GROUP_SERVICE_CLIENT_SECRET")
	_ = v.BindEnv("group_service.token_url", "GROUP_SERVICE_TOKEN_URL")
	_ = v.BindEnv("group_service.timeout", "GROUP_SERVICE_TIMEOUT")
	_ = v.BindEnv("viewer.user_id", "VIEWER_USER_ID")
	_ = v.BindEnv("locale", "LOCALE")
	_ = v.BindEnv("network.probe", "NETWORK_PROBE")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("telemetry.enabled", "TELEMETRY_ENABLED")
	_ = v.BindEnv("telemetry.buffer_size", "TELEMETRY_BUFFER_SIZE")
	_ = v.BindEnv("dynamodb.enabled", "DYNAMODB_ENABLED")
	_ = v.BindEnv("dynamodb.table_name", "DYNAMODB_TABLE_NAME")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.ttl_days", "DYNAMODB_TTL_DAYS")
	_ = v.BindEnv("cloudwatch.enabled", "CLOUDWATCH_ENABLED")
	_ = v.BindEnv("cloudwatch.namespace", "CLOUDWATCH_NAMESPACE")
	_ = v.BindEnv("cloudwatch.region", "CLOUDWATCH_REGION")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	// Explicitly map values to avoid tag mismatch issues.
	cfg.GroupService.BaseURL = v.GetString("group_service.base_url")
	cfg.GroupService.Token = v.GetString("group_service.token")
	cfg.GroupService.TokenSecret = v.GetString("group_service.token_secret")
	cfg.GroupService.TokenFile = v.GetString("group_service.token_file")
	cfg.GroupService.ClientID = v.GetString("group_service.client_id")
	cfg.GroupService.ClientSecret = v.GetString("group_service.client_secret")
	cfg.GroupService.TokenURL = v.GetString("group_service.token_url")
	cfg.GroupService.Timeout = v.GetDuration("group_service.timeout")

	cfg.Viewer.UserID = v.GetString("viewer.user_id")
	cfg.Locale = v.GetString("locale")
	cfg.Network.Probe = v.GetBool("network.probe")

	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	cfg.Telemetry.Enabled = v.GetBool("telemetry.enabled")
	cfg.Telemetry.BufferSize = v.GetInt("telemetry.buffer_size")

	cfg.DynamoDB.Enabled = v.GetBool("dynamodb.enabled")
	cfg.DynamoDB.TableName = v.GetString("dynamodb.table_name")
	cfg.DynamoDB.Region = v.GetString("dynamodb.region")
	cfg.DynamoDB.Endpoint = v.GetString("dynamodb.endpoint")
	cfg.DynamoDB.TTLDays = v.GetInt("dynamodb.ttl_days")

	cfg.CloudWatch.Enabled = v.GetBool("cloudwatch.enabled")
	cfg.CloudWatch.Namespace = v.GetString("cloudwatch.namespace")
	cfg.CloudWatch.Region = v.GetString("cloudwatch.region")

	cfg.IsLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	return cfg, nil
}
