package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
)

// SecretSource returns secret strings by name.
type SecretSource interface {
	GetSecretString(secretID string) (string, error)
}

// Manager wraps the Secrets Manager cache client.
type Manager struct {
	cache SecretSource
}

// NewManager creates a new Secrets Manager cache.
func NewManager() (*Manager, error) {
	cache, err := secretcache.New()
	if err != nil {
		return nil, err
	}
	return &Manager{cache: cache}, nil
}

// GetSecretString retrieves a secret value from Secrets Manager.
func (m *Manager) GetSecretString(secretName string) (string, error) {
	if secretName == "" {
		return "", fmt.Errorf("secret name is required")
	}
	return m.cache.GetSecretString(secretName)
}

// LoadSecretFromFile reads a secret value from a local file.
func LoadSecretFromFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// newManager is swapped in tests.
var newManager = func() (SecretSource, error) {
	return NewManager()
}

// TokenSource names the places a group service token may come from.
type TokenSource struct {
	Literal    string
	SecretName string
	FilePath   string
}

// IsZero reports whether no source was configured.
func (s TokenSource) IsZero() bool {
	return s.Literal == "" && s.SecretName == "" && s.FilePath == ""
}

// ResolveToken returns the bearer token from the first configured source:
// the literal value, then Secrets Manager, then a local file. An empty token
// without error means nothing was configured.
func ResolveToken(src TokenSource) (string, error) {
	switch {
	case src.Literal != "":
		return strings.TrimSpace(src.Literal), nil
	case src.SecretName != "":
		manager, err := newManager()
		if err != nil {
			return "", fmt.Errorf("creating secrets manager: %w", err)
		}
		value, err := manager.GetSecretString(src.SecretName)
		if err != nil {
			return "", fmt.Errorf("reading secret %s: %w", src.SecretName, err)
		}
		return strings.TrimSpace(value), nil
	case src.FilePath != "":
		value, err := LoadSecretFromFile(src.FilePath)
		if err != nil {
			return "", fmt.Errorf("reading token file: %w", err)
		}
		return strings.TrimSpace(value), nil
	}
	return "", nil
}
