package groupapi

import (
	"context"
	"sync"

	"github.com/daniloc96/group-console/internal/models"
)

// MockClient is a simple mock implementation of the group service.
type MockClient struct {
	GetByIDFunc                func(ctx context.Context, groupID string) (*models.GroupDetails, error)
	DeleteByIDFunc             func(ctx context.Context, groupID string) (*models.MutationResponse, error)
	RemoveMembersFunc          func(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error)
	UpdateMembersFunc          func(ctx context.Context, groupID string, updates []models.MemberRoleUpdate) (*models.MutationResponse, error)
	RemoveActivitiesFunc       func(ctx context.Context, groupID string, activityIDs []string) (*models.MutationResponse, error)
	GetSupportedActivitiesFunc func(ctx context.Context) ([]models.SupportedActivity, error)

	mu    sync.Mutex
	Calls []string
}

func (m *MockClient) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
}

// CallCount returns how many times the named method was invoked.
func (m *MockClient) CallCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *MockClient) GetByID(ctx context.Context, groupID string) (*models.GroupDetails, error) {
	m.record("GetByID")
	if m.GetByIDFunc == nil {
		return &models.GroupDetails{GroupID: groupID}, nil
	}
	return m.GetByIDFunc(ctx, groupID)
}

func (m *MockClient) DeleteByID(ctx context.Context, groupID string) (*models.MutationResponse, error) {
	m.record("DeleteByID")
	if m.DeleteByIDFunc == nil {
		return &models.MutationResponse{}, nil
	}
	return m.DeleteByIDFunc(ctx, groupID)
}

func (m *MockClient) RemoveMembers(ctx context.Context, groupID string, userIDs []string) (*models.MutationResponse, error) {
	m.record("RemoveMembers")
	if m.RemoveMembersFunc == nil {
		return &models.MutationResponse{}, nil
	}
	return m.RemoveMembersFunc(ctx, groupID, userIDs)
}

func (m *MockClient) UpdateMembers(ctx context.Context, groupID string, updates []models.MemberRoleUpdate) (*models.MutationResponse, error) {
	m.record("UpdateMembers")
	if m.UpdateMembersFunc == nil {
		return &models.MutationResponse{}, nil
	}
	return m.UpdateMembersFunc(ctx, groupID, updates)
}

func (m *MockClient) RemoveActivities(ctx context.Context, groupID string, activityIDs []string) (*models.MutationResponse, error) {
	m.record("RemoveActivities")
	if m.RemoveActivitiesFunc == nil {
		return &models.MutationResponse{}, nil
	}
	return m.RemoveActivitiesFunc(ctx, groupID, activityIDs)
}

func (m *MockClient) GetSupportedActivities(ctx context.Context) ([]models.SupportedActivity, error) {
	m.record("GetSupportedActivities")
	if m.GetSupportedActivitiesFunc == nil {
		return nil, nil
	}
	return m.GetSupportedActivitiesFunc(ctx)
}
