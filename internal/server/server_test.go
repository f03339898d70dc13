package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
	"github.com/osse101/GielinorRush_Go/mocks"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

const testKey = "test-key"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockTreasureService) {
	svc := mocks.NewMockTreasureService(t)
	return NewRouter(Options{APIKey: testKey, Version: "1.2.3"}, stubPool{}, svc), svc
}

func do(h http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if authed {
		req.Header.Set(HeaderAPIKey, testKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/version", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"1.2.3"`)

	rec = do(h, http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/catalog/buffs", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/catalog/buffs", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TreasureRoutes(t *testing.T) {
	h, svc := newTestRouter(t)

	svc.On("GetEvent", mock.Anything, "evt-1").Return(&domain.TreasureEvent{EventID: "evt-1"}, nil)
	svc.On("CompleteNode", mock.Anything, "evt-1", "team-1", "n1").
		Return(&treasure.TransitionResult{Team: &domain.Team{TeamID: "team-1"}}, nil)
	svc.On("AdjustPot", mock.Anything, "evt-1", "team-1", mock.Anything).
		Return(&treasure.TransitionResult{Team: &domain.Team{TeamID: "team-1"}}, nil)

	rec := do(h, http.MethodGet, "/api/v1/events/evt-1", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/events/evt-1/teams/team-1/complete", `{"node_id":"n1"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/events/evt-1/teams/team-1/admin/adjust-pot", `{"delta":"250"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/events/evt-1/teams/team-1/complete", "", true)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_ReadyzDatabaseDown(t *testing.T) {
	svc := mocks.NewMockTreasureService(t)
	h := NewRouter(Options{APIKey: testKey}, stubPool{err: assert.AnError}, svc)

	rec := do(h, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
