package groupapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/daniloc96/group-console/internal/endpoints"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Options configures the group service client.
type Options struct {
	BaseURL      string
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Timeout      time.Duration
}

// Client implements the group service over its REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a group service client. Client credentials take
// precedence over a static bearer token.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("group service base url is required")
	}

	var httpClient *http.Client
	switch {
	case opts.ClientID != "" && opts.ClientSecret != "":
		cc := &clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     opts.TokenURL,
		}
		httpClient = cc.Client(ctx)
	case opts.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	default:
		return nil, fmt.Errorf("group service token or client credentials are required")
	}
	if opts.Timeout > 0 {
		httpClient.Timeout = opts.Timeout
	}

	return &Client{httpClient: httpClient, baseURL: opts.BaseURL}, nil
}

type envelope struct {
	Request interface{} `json:"request"`
}

type updateRequest struct {
	GroupID    string          `json:"groupId"`
	Members    *memberUpdate   `json:"members,omitempty"`
	Activities *activityUpdate `json:"activities,omitempty"`
}

type memberUpdate struct {
	Remove []string                  `json:"remove,omitempty"`
	Edit   []models.MemberRoleUpdate `json:"edit,omitempty"`
}

type activityUpdate struct {
	Remove []string `json:"remove,omitempty"`
}

type formRequest struct {
	Type      string `json:"type"`
	SubType   string `json:"subType"`
	Action    string `json:"action"`
	Component string `json:"component"`
}

// GetByID reads a group with its members and activities.
func (c *Client) GetByID(ctx context.Context, groupID string) (*models.GroupDetails, error) {
	if groupID == "" {
		return nil, fmt.Errorf("group id is required")
	}
	url, err := endpoints.Resolve(c.baseURL, endpoints.ServiceGroup, endpoints.GroupRead, groupID+endpoints.GroupReadArgs)
	if err != nil {
		return nil, err
	}

	var out struct {
		Result models.GroupDetails `json:"result"`
	}
	err = withRetry(ctx, isRetryableRead, func() error {
		return c.doJSON(ctx, http.MethodGet, url, nil, &out)
	})
	if err != nil {
		logAPIError(err, logrus.Fields{"op": "read", "group_id": groupID})
		return nil, err
	}
	return &out.Result, nil
}

// DeleteByID deletes a group.
func (c *Client) DeleteByID(ctx context.Context, groupID string) (*models.MutationResponse, error) {
	if groupID == "" {
		return nil, fmt.Errorf("group id is required")
	}
	return c.mutate(ctx, http.MethodPost, endpoints.GroupDelete, envelope{Request: map[string]string{"groupId": groupID}}, groupID)
}

// RemoveMembers removes users from a group.
func (c *Client) RemoveMembers(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error) {
	req := updateRequest{GroupID: groupID, Members: &memberUpdate{Remove: userIDs}}
	return c.mutate(ctx, http.MethodPatch, endpoints.GroupUpdate, envelope{Request: req}, groupID)
}

// UpdateMembers changes member roles.
func (c *Client) UpdateMembers(ctx context.Context, groupID string, updates []models.MemberRoleUpdate) (*models.MutationResponse, error) {
	req := updateRequest{GroupID: groupID, Members: &memberUpdate{Edit: updates}}
	return c.mutate(ctx, http.MethodPatch, endpoints.GroupUpdate, envelope{Request: req}, groupID)
}

// RemoveActivities detaches activities from a group.
func (c *Client) RemoveActivities(ctx context.Context, groupID string, activityIDs []string) (*models.MutationResponse, error) {
	req := updateRequest{GroupID: groupID, Activities: &activityUpdate{Remove: activityIDs}}
	return c.mutate(ctx, http.MethodPatch, endpoints.GroupUpdate, envelope{Request: req}, groupID)
}

// GetSupportedActivities reads the activity types a group can attach.
func (c *Client) GetSupportedActivities(ctx context.Context) ([]models.SupportedActivity, error) {
	url, err := endpoints.Resolve(c.baseURL, endpoints.ServiceData, endpoints.FormRead, "")
	if err != nil {
		return nil, err
	}
	body := envelope{Request: formRequest{
		Type:      "group",
		SubType:   "supported_activities",
		Action:    "list",
		Component: "app",
	}}

	var out struct {
		Result struct {
			Form struct {
				Data struct {
					Fields []models.SupportedActivity `json:"fields"`
				} `json:"data"`
			} `json:"form"`
		} `json:"result"`
	}
	err = withRetry(ctx, isRetryableRead, func() error {
		return c.doJSON(ctx, http.MethodPost, url, body, &out)
	})
	if err != nil {
		logAPIError(err, logrus.Fields{"op": "form_read"})
		return nil, err
	}
	return out.Result.Form.Data.Fields, nil
}

func (c *Client) mutate(ctx context.Context, method string, endpoint string, body interface{}, groupID string) (*models.MutationResponse, error) {
	if groupID == "" {
		return nil, fmt.Errorf("group id is required")
	}
	url, err := endpoints.Resolve(c.baseURL, endpoints.ServiceGroup, endpoint, "")
	if err != nil {
		return nil, err
	}

	var out struct {
		Result models.MutationResponse `json:"result"`
	}
	// A mutation that reached the backend may already be applied, so only a
	// rate-limited request is sent again.
	err = withRetry(ctx, isRateLimited, func() error {
		return c.doJSON(ctx, method, url, body, &out)
	})
	if err != nil {
		logAPIError(err, logrus.Fields{"op": endpoint, "group_id": groupID})
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) doJSON(ctx context.Context, method string, url string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.TransportError{Op: method + " " + url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := string(bytes.TrimSpace(snippet))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &models.TransportError{
			Op:         method + " " + url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(msg),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &models.TransportError{Op: method + " " + url, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func logAPIError(err error, fields logrus.Fields) {
	var te *models.TransportError
	if errors.As(err, &te) && te.StatusCode != 0 {
		fields["status"] = te.StatusCode
	}
	logrus.WithError(err).WithFields(fields).Error("✗ Group service request failed")
}

var initialBackoff = 200 * time.Millisecond

// withRetry calls fn until it succeeds, returns an error retryable rejects,
// or runs out of attempts.
func withRetry(ctx context.Context, retryable func(error) bool, fn func() error) error {
	const maxRetries = 3
	backoff := initialBackoff
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == maxRetries {
			return err
		}
		if backoff > 2*time.Second {
			backoff = 2 * time.Second
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil
}

func statusOf(err error) int {
	var te *models.TransportError
	if !errors.As(err, &te) {
		return 0
	}
	return te.StatusCode
}

func isRateLimited(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

func isRetryableRead(err error) bool {
	switch statusOf(err) {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
