package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniloc96/group-console/internal/config"
	"github.com/daniloc96/group-console/internal/models"
)

func setEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("GROUP_SERVICE_BASE_URL", baseURL)
	t.Setenv("GROUP_SERVICE_TOKEN", "test-token")
	t.Setenv("VIEWER_USER_ID", "u-admin")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
}

func stubRunAction(t *testing.T, fn func(ctx context.Context, cfg *config.Config, event models.ActionEvent) (*models.WorkflowResult, error)) {
	t.Helper()
	original := runAction
	runAction = fn
	t.Cleanup(func() { runAction = original })
}

func TestHandleRequest(t *testing.T) {
	setEnv(t, "https://groups.example.com")
	stubRunAction(t, func(ctx context.Context, cfg *config.Config, event models.ActionEvent) (*models.WorkflowResult, error) {
		if cfg.GroupService.Token != "test-token" {
			t.Fatalf("expected token from env, got %q", cfg.GroupService.Token)
		}
		return &models.WorkflowResult{
			Action:    event.ActionID(),
			Confirmed: true,
			Outcome:   models.OutcomeSuccess,
			States:    []models.WorkflowState{models.StateIdle, models.StateSuccess, models.StateIdle},
		}, nil
	})

	resp, err := HandleRequest(context.Background(), models.ActionEvent{GroupID: "g-1", Action: "leave-group"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if !strings.HasPrefix(resp.Message, "leave-group: ") {
		t.Fatalf("expected action in message, got %s", resp.Message)
	}
}

func TestHandleRequestInvalidEvent(t *testing.T) {
	setEnv(t, "https://groups.example.com")
	stubRunAction(t, func(ctx context.Context, cfg *config.Config, event models.ActionEvent) (*models.WorkflowResult, error) {
		t.Fatalf("runAction should not be called")
		return nil, nil
	})

	tests := []struct {
		name  string
		event models.ActionEvent
		want  string
	}{
		{name: "missing group", event: models.ActionEvent{Action: "leave-group"}, want: "group_id"},
		{name: "unknown action", event: models.ActionEvent{GroupID: "g-1", Action: "archive-group"}, want: "action"},
		{name: "member action without member", event: models.ActionEvent{GroupID: "g-1", Action: "remove-member"}, want: "member_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := HandleRequest(context.Background(), tt.event)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != 400 || !strings.Contains(resp.Message, tt.want) {
				t.Fatalf("expected 400 mentioning %s, got %d (%s)", tt.want, resp.StatusCode, resp.Message)
			}
		})
	}
}

func TestHandleRequestRunError(t *testing.T) {
	setEnv(t, "https://groups.example.com")
	stubRunAction(t, func(ctx context.Context, cfg *config.Config, event models.ActionEvent) (*models.WorkflowResult, error) {
		return nil, errors.New("group not found")
	})

	resp, _ := HandleRequest(context.Background(), models.ActionEvent{GroupID: "g-1", Action: "delete-group"})
	if resp.StatusCode != 500 || resp.Message != "group not found" {
		t.Fatalf("expected 500, got %d (%s)", resp.StatusCode, resp.Message)
	}
}

func TestHandleRequestRemovesMember(t *testing.T) {
	var removed []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/group/v1/read/g-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"result": models.GroupDetails{
				GroupID:   "g-1",
				Name:      "Science Club",
				CreatedBy: "u-admin",
				Members: []models.GroupMember{
					{UserID: "u-admin", Name: "Anna", Role: models.RoleAdmin},
					{UserID: "u-member", Name: "Mario", Role: models.RoleMember},
				},
			},
		})
	})
	mux.HandleFunc("/api/group/v1/update", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Request struct {
				Members struct {
					Remove []string `json:"remove"`
				} `json:"members"`
			} `json:"request"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		removed = body.Request.Members.Remove
		_, _ = w.Write([]byte(`{"result":{"error":{"members":[]}}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	setEnv(t, srv.URL)

	resp, err := HandleRequest(context.Background(), models.ActionEvent{GroupID: "g-1", Action: "remove-member", MemberID: "u-member"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 || resp.Result == nil || !resp.Result.Succeeded() {
		t.Fatalf("expected success, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if len(removed) != 1 || removed[0] != "u-member" {
		t.Fatalf("expected u-member removed, got %v", removed)
	}

	resp, _ = HandleRequest(context.Background(), models.ActionEvent{GroupID: "g-1", Action: "remove-member", MemberID: "ghost"})
	if resp.StatusCode != 500 || !strings.Contains(resp.Message, "ghost") {
		t.Fatalf("expected unknown member error, got %d (%s)", resp.StatusCode, resp.Message)
	}
}
