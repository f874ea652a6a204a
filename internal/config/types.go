package config

import "time"

// Config holds all configuration for the group console.
type Config struct {
	GroupService GroupServiceConfig `json:"group_service"`
	Viewer       ViewerConfig       `json:"viewer"`
	Locale       string             `json:"locale"`
	Network      NetworkConfig      `json:"network"`
	Log          LogConfig          `json:"log"`
	Telemetry    TelemetryConfig    `json:"telemetry"`
	DynamoDB     DynamoDBConfig     `json:"dynamodb"`
	CloudWatch   CloudWatchConfig   `json:"cloudwatch"`
	IsLambda     bool               `json:"-"`
}

// GroupServiceConfig holds the remote group service settings. Exactly one
// way of authenticating is expected: a token (literal, secret or file) or
// OAuth2 client credentials.
type GroupServiceConfig struct {
	BaseURL      string        `json:"base_url"`
	Token        string        `json:"-"`
	TokenSecret  string        `json:"token_secret,omitempty"`
	TokenFile    string        `json:"token_file,omitempty"`
	ClientID     string        `json:"client_id,omitempty"`
	ClientSecret string        `json:"-"`
	TokenURL     string        `json:"token_url,omitempty"`
	Timeout      time.Duration `json:"timeout"`
}

// HasClientCredentials reports whether any client credential field is set.
func (g GroupServiceConfig) HasClientCredentials() bool {
	return g.ClientID != "" || g.ClientSecret != "" || g.TokenURL != ""
}

// ViewerConfig identifies the signed-in user.
type ViewerConfig struct {
	UserID string `json:"user_id"`
}

// NetworkConfig controls the connectivity probe.
type NetworkConfig struct {
	Probe bool `json:"probe"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// TelemetryConfig holds telemetry generator settings.
type TelemetryConfig struct {
	Enabled    bool `json:"enabled"`
	BufferSize int  `json:"buffer_size"`
}

// DynamoDBConfig holds DynamoDB settings for the telemetry archive.
type DynamoDBConfig struct {
	TableName string `json:"table_name"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint,omitempty"`
	Enabled   bool   `json:"enabled"`
	TTLDays   int    `json:"ttl_days"`
}

// CloudWatchConfig holds settings for the interact counters.
type CloudWatchConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
	Region    string `json:"region"`
}
