package groupdetails

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/daniloc96/group-console/internal/groupapi"
	"github.com/daniloc96/group-console/internal/interfaces"
	"github.com/daniloc96/group-console/internal/models"
	"github.com/daniloc96/group-console/internal/telemetry"
)

type mockPopover struct {
	menuResults    []*models.PopoverResult
	confirmResults []*models.PopoverResult
	menuErr        error
	confirmErr     error

	menuRequests    []models.MenuRequest
	confirmRequests []models.ConfirmRequest
}

func (m *mockPopover) PresentMenu(ctx context.Context, req models.MenuRequest) (*models.PopoverResult, error) {
	m.menuRequests = append(m.menuRequests, req)
	if m.menuErr != nil {
		return nil, m.menuErr
	}
	if len(m.menuResults) == 0 {
		return nil, nil
	}
	next := m.menuResults[0]
	m.menuResults = m.menuResults[1:]
	return next, nil
}

func (m *mockPopover) PresentConfirm(ctx context.Context, req models.ConfirmRequest) (*models.PopoverResult, error) {
	m.confirmRequests = append(m.confirmRequests, req)
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	if len(m.confirmResults) == 0 {
		return nil, nil
	}
	next := m.confirmResults[0]
	m.confirmResults = m.confirmResults[1:]
	return next, nil
}

// selects queues a menu selection followed by a confirm answer.
func (m *mockPopover) selects(tag models.MenuTag, confirm bool) {
	m.menuResults = append(m.menuResults, &models.PopoverResult{SelectedItem: tag})
	m.confirmResults = append(m.confirmResults, &models.PopoverResult{IsLeftButtonClicked: confirm})
}

type mockToaster struct {
	toasts        []string
	offlineToasts []string
}

func (m *mockToaster) ShowToast(message string) {
	m.toasts = append(m.toasts, message)
}

func (m *mockToaster) PresentToastForOffline(message string) {
	m.offlineToasts = append(m.offlineToasts, message)
}

type navigation struct {
	route string
	state models.NavigationState
}

type mockNavigator struct {
	navigations []navigation
	backs       int
}

func (m *mockNavigator) Navigate(route string, state models.NavigationState) {
	m.navigations = append(m.navigations, navigation{route: route, state: state})
}

func (m *mockNavigator) Back() {
	m.backs++
}

type mockLoader struct {
	presented int
	dismissed int
}

func (m *mockLoader) Present() { m.presented++ }
func (m *mockLoader) Dismiss() { m.dismissed++ }

func (m *mockLoader) GetLoader() interfaces.Loader {
	return m
}

type mockNetwork struct {
	online bool
}

func (m *mockNetwork) IsNetworkAvailable() bool {
	return m.online
}

// echoTranslator renders "KEY" or "KEY(name=value,...)" and records every key.
type echoTranslator struct {
	mu   sync.Mutex
	keys []string
}

func (e *echoTranslator) TranslateMessage(key string, params map[string]string) string {
	e.mu.Lock()
	e.keys = append(e.keys, key)
	e.mu.Unlock()
	if len(params) == 0 {
		return key
	}
	parts := make([]string, 0, len(params))
	for k, v := range params {
		parts = append(parts, k+"="+v)
	}
	return key + "(" + strings.Join(parts, ",") + ")"
}

type fixture struct {
	groups     *groupapi.MockClient
	telemetry  *telemetry.Recorder
	translator *echoTranslator
	network    *mockNetwork
	navigator  *mockNavigator
	popovers   *mockPopover
	toaster    *mockToaster
	loader     *mockLoader
	controller *Controller
}

func sampleGroup() *models.GroupDetails {
	return &models.GroupDetails{
		GroupID:   "g-1",
		Name:      "Science Club",
		CreatedBy: "u-creator",
		Members: []models.GroupMember{
			{UserID: "u-creator", Name: "Carla", Role: models.RoleAdmin},
			{UserID: "u-member", Name: "Mario", Role: models.RoleMember},
			{UserID: "u-admin", Name: "Anna", Role: models.RoleAdmin},
			{UserID: "u-other", Name: "Luca", Role: models.RoleMember},
		},
		Activities: []models.GroupActivity{
			{ID: "a-1", Type: "Course", ActivityInfo: models.ActivityInfo{Identifier: "do_1", Name: "Physics 101"}},
			{ID: "a-2", Type: "Course", ActivityInfo: models.ActivityInfo{Identifier: "do_2", Name: "Chemistry"}},
		},
	}
}

// newFixture builds a loaded controller for viewerID on sampleGroup.
func newFixture(t *testing.T, viewerID string) *fixture {
	t.Helper()
	f := &fixture{
		groups: &groupapi.MockClient{
			GetByIDFunc: func(ctx context.Context, groupID string) (*models.GroupDetails, error) {
				return sampleGroup(), nil
			},
		},
		telemetry:  &telemetry.Recorder{},
		translator: &echoTranslator{},
		network:    &mockNetwork{online: true},
		navigator:  &mockNavigator{},
		popovers:   &mockPopover{},
		toaster:    &mockToaster{},
		loader:     &mockLoader{},
	}
	c, err := NewController("g-1", viewerID, Dependencies{
		Groups:     f.groups,
		Telemetry:  f.telemetry,
		Translator: f.translator,
		Network:    f.network,
		Navigator:  f.navigator,
		Popovers:   f.popovers,
		Toaster:    f.toaster,
		Loaders:    f.loader,
	})
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f.controller = c
	return f
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
