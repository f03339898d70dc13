package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/progression"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
	"github.com/osse101/GielinorRush_Go/mocks"
)

// withParams attaches chi URL params to a request
func withParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func teamParams() map[string]string {
	return map[string]string{ParamEventID: "evt-1", ParamTeamID: "team-1"}
}

func TestHandleCreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockTreasureService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			body: `{"name":"Summer Rush","prize_pool_total":"10000000","num_teams":4,"players_per_team":3,"duration_days":14}`,
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CreateEvent", mock.Anything, mock.MatchedBy(func(req treasure.CreateEventRequest) bool {
					return req.Name == "Summer Rush" &&
						req.Config.PrizePoolTotal.String() == "10000000" &&
						req.Config.NumTeams == 4 &&
						req.Config.DurationDays == 14
				})).Return(&domain.TreasureEvent{EventID: "evt-1", Name: "Summer Rush", Status: domain.EventStatusDraft}, nil)
			},
			expectedStatus: http.StatusCreated,
			verifyBody: func(t *testing.T, body string) {
				var evt domain.TreasureEvent
				require.NoError(t, json.Unmarshal([]byte(body), &evt))
				assert.Equal(t, "evt-1", evt.EventID)
				assert.Equal(t, domain.EventStatusDraft, evt.Status)
			},
		},
		{
			name:           "Missing name",
			body:           `{"prize_pool_total":"100","num_teams":1,"players_per_team":1}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Contains(t, resp.Fields, "name")
			},
		},
		{
			name:           "Zero prize pool",
			body:           `{"name":"x","prize_pool_total":"0","num_teams":1,"players_per_team":1}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "prize_pool_total")
			},
		},
		{
			name:           "Unknown difficulty",
			body:           `{"name":"x","prize_pool_total":"100","num_teams":1,"players_per_team":1,"difficulty":"nightmare"}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "difficulty")
			},
		},
		{
			name:           "Unknown field",
			body:           `{"name":"x","bogus":true}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
		{
			name: "Service rejects config",
			body: `{"name":"x","prize_pool_total":"100","num_teams":1,"players_per_team":1}`,
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CreateEvent", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: too few nodes", domain.ErrInvalidEventConfig))
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "too few nodes")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTreasureService(t)
			tt.setupMock(mockSvc)
			h := NewTreasureHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleCreateEvent(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandleGetEvent(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := mocks.NewMockTreasureService(t)
		mockSvc.On("GetEvent", mock.Anything, "evt-1").Return(&domain.TreasureEvent{EventID: "evt-1"}, nil)

		req := withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1", nil), map[string]string{ParamEventID: "evt-1"})
		rec := httptest.NewRecorder()
		NewTreasureHandler(mockSvc).HandleGetEvent(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"evt-1"`)
	})

	t.Run("Not found", func(t *testing.T) {
		mockSvc := mocks.NewMockTreasureService(t)
		mockSvc.On("GetEvent", mock.Anything, "nope").Return(nil, fmt.Errorf("%w: nope", domain.ErrEventNotFound))

		req := withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/nope", nil), map[string]string{ParamEventID: "nope"})
		rec := httptest.NewRecorder()
		NewTreasureHandler(mockSvc).HandleGetEvent(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgEventNotFoundError)
	})

	t.Run("Missing param", func(t *testing.T) {
		mockSvc := mocks.NewMockTreasureService(t)

		req := withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/", nil), map[string]string{})
		rec := httptest.NewRecorder()
		NewTreasureHandler(mockSvc).HandleGetEvent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCloseEvent(t *testing.T) {
	eventParams := map[string]string{ParamEventID: "evt-1"}

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockTreasureService(t)
		mockSvc.On("CloseEvent", mock.Anything, "evt-1").Return(&treasure.CloseResult{
			Event:     &domain.TreasureEvent{EventID: "evt-1", Status: domain.EventStatusCompleted},
			Standings: []domain.LeaderboardEntry{{Rank: 1, TeamID: "team-1", Name: "Alpha"}},
		}, nil)

		req := withParams(httptest.NewRequest(http.MethodPost, "/api/v1/events/evt-1/close", nil), eventParams)
		rec := httptest.NewRecorder()
		NewTreasureHandler(mockSvc).HandleCloseEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var res treasure.CloseResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, domain.EventStatusCompleted, res.Event.Status)
		require.Len(t, res.Standings, 1)
		assert.Equal(t, "Alpha", res.Standings[0].Name)
	})

	t.Run("Draft event", func(t *testing.T) {
		mockSvc := mocks.NewMockTreasureService(t)
		mockSvc.On("CloseEvent", mock.Anything, "evt-1").
			Return(nil, fmt.Errorf("%w: draft", domain.ErrEventNotActive))

		req := withParams(httptest.NewRequest(http.MethodPost, "/api/v1/events/evt-1/close", nil), eventParams)
		rec := httptest.NewRecorder()
		NewTreasureHandler(mockSvc).HandleCloseEvent(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgEventNotActiveError)
	})
}

func TestHandleGenerateMap(t *testing.T) {
	seed := int64(7)
	result := &treasure.GenerateResult{
		Event: &domain.TreasureEvent{EventID: "evt-1", MapVersion: 1},
		Map:   &domain.GeneratedMap{Nodes: []domain.Node{{NodeID: "n1"}, {NodeID: "n2"}}},
		Seed:  seed,
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockTreasureService)
		expectedStatus int
	}{
		{
			name: "Empty body",
			body: "",
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("GenerateMap", mock.Anything, "evt-1", mock.MatchedBy(func(o treasure.GenerateOptions) bool {
					return o.Seed == nil && o.ContentSelections == nil
				})).Return(result, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "With seed",
			body: `{"seed":7}`,
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("GenerateMap", mock.Anything, "evt-1", mock.MatchedBy(func(o treasure.GenerateOptions) bool {
					return o.Seed != nil && *o.Seed == seed
				})).Return(result, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Completed event",
			body: "",
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("GenerateMap", mock.Anything, "evt-1", mock.Anything).
					Return(nil, fmt.Errorf("%w: completed", domain.ErrEventNotEditable))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Generation failure",
			body: "",
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("GenerateMap", mock.Anything, "evt-1", mock.Anything).
					Return(nil, fmt.Errorf("%w: no boss", domain.ErrNoObjectiveAvailable))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Malformed body",
			body:           `{"seed":`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTreasureService(t)
			tt.setupMock(mockSvc)

			req := withParams(httptest.NewRequest(http.MethodPost, "/api/v1/events/evt-1/map/generate", strings.NewReader(tt.body)),
				map[string]string{ParamEventID: "evt-1"})
			rec := httptest.NewRecorder()
			NewTreasureHandler(mockSvc).HandleGenerateMap(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleGetMapAndLeaderboard(t *testing.T) {
	mockSvc := mocks.NewMockTreasureService(t)
	mockSvc.On("GetMap", mock.Anything, "evt-1").Return(nil, fmt.Errorf("%w: evt-1", domain.ErrMapNotGenerated))
	mockSvc.On("Leaderboard", mock.Anything, "evt-1").Return([]domain.LeaderboardEntry{
		{Rank: 1, TeamID: "a", Name: "Alpha", CurrentPot: domain.NewGP(500)},
		{Rank: 2, TeamID: "b", Name: "Bravo"},
	}, nil)
	h := NewTreasureHandler(mockSvc)
	params := map[string]string{ParamEventID: "evt-1"}

	rec := httptest.NewRecorder()
	h.HandleGetMap(rec, withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1/map", nil), params))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleLeaderboard(rec, withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1/leaderboard", nil), params))
	require.Equal(t, http.StatusOK, rec.Code)

	var board []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board, 2)
	assert.Equal(t, "Alpha", board[0].Name)
	assert.Equal(t, "500", board[0].CurrentPot.String())
}

func TestHandleCreateTeam(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockTreasureService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Alpha","members":["Zezima","Woox"]}`,
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CreateTeam", mock.Anything, "evt-1", treasure.CreateTeamRequest{Name: "Alpha", Members: []string{"Zezima", "Woox"}}).
					Return(&domain.Team{TeamID: "team-1", Name: "Alpha"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Name taken",
			body: `{"name":"Alpha"}`,
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CreateTeam", mock.Anything, "evt-1", mock.Anything).
					Return(nil, fmt.Errorf("%w: Alpha", domain.ErrTeamNameTaken))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Empty member",
			body:           `{"name":"Alpha","members":[""]}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Name too long",
			body:           `{"name":"` + strings.Repeat("a", 51) + `"}`,
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTreasureService(t)
			tt.setupMock(mockSvc)

			req := withParams(httptest.NewRequest(http.MethodPost, "/api/v1/events/evt-1/teams", strings.NewReader(tt.body)),
				map[string]string{ParamEventID: "evt-1"})
			rec := httptest.NewRecorder()
			NewTreasureHandler(mockSvc).HandleCreateTeam(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleGetTeam(t *testing.T) {
	mockSvc := mocks.NewMockTreasureService(t)
	mockSvc.On("GetTeam", mock.Anything, "evt-1", "team-1").Return(&treasure.TeamView{
		Team:                &domain.Team{TeamID: "team-1", Name: "Alpha"},
		EffectiveObjectives: map[string]*domain.Objective{},
	}, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1/teams/team-1", nil), teamParams())
	rec := httptest.NewRecorder()
	NewTreasureHandler(mockSvc).HandleGetTeam(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Alpha"`)
}

func TestHandleTransitions(t *testing.T) {
	ok := &treasure.TransitionResult{
		Team:    &domain.Team{TeamID: "team-1"},
		Outcome: &progression.Outcome{NodeID: "n1", GPDelta: domain.NewGP(1000)},
	}

	tests := []struct {
		name           string
		body           string
		call           func(h *TreasureHandler) http.HandlerFunc
		setupMock      func(*mocks.MockTreasureService)
		expectedStatus int
	}{
		{
			name: "Complete success",
			body: `{"node_id":"n1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleCompleteNode },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CompleteNode", mock.Anything, "evt-1", "team-1", "n1").Return(ok, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Complete unavailable",
			body: `{"node_id":"n9"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleCompleteNode },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CompleteNode", mock.Anything, "evt-1", "team-1", "n9").
					Return(nil, fmt.Errorf("%w: n9", domain.ErrNodeNotAvailable))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Complete missing node",
			body:           `{}`,
			call:           func(h *TreasureHandler) http.HandlerFunc { return h.HandleCompleteNode },
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Uncomplete not completed",
			body: `{"node_id":"n1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleUncompleteNode },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("UncompleteNode", mock.Anything, "evt-1", "team-1", "n1").
					Return(nil, fmt.Errorf("%w: n1", domain.ErrNodeNotCompleted))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Apply buff not applicable",
			body: `{"buff_id":"b1","node_id":"n1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleApplyBuff },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("ApplyBuff", mock.Anything, "evt-1", "team-1", "b1", "n1").
					Return(nil, fmt.Errorf("%w: xp buff on boss", domain.ErrBuffNotApplicable))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Purchase insufficient keys",
			body: `{"reward_id":"r1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandlePurchaseInnReward },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("PurchaseInnReward", mock.Anything, "evt-1", "team-1", "r1").
					Return(nil, fmt.Errorf("%w: need 2 red", domain.ErrInsufficientKeys))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Purchase twice",
			body: `{"reward_id":"r1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandlePurchaseInnReward },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("PurchaseInnReward", mock.Anything, "evt-1", "team-1", "r1").
					Return(nil, fmt.Errorf("%w: r1", domain.ErrRewardAlreadyPurchased))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Grant buff",
			body: `{"buff_type":"lucky_charm"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleGrantBuff },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("GrantBuff", mock.Anything, "evt-1", "team-1", domain.BuffLuckyCharm).Return(ok, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Grant unknown buff",
			body:           `{"buff_type":"double_xp"}`,
			call:           func(h *TreasureHandler) http.HandlerFunc { return h.HandleGrantBuff },
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Adjust pot negative",
			body: `{"delta":"-500"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleAdjustPot },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("AdjustPot", mock.Anything, "evt-1", "team-1", mock.MatchedBy(func(d domain.GP) bool {
					return d.String() == "-500"
				})).Return(nil, domain.ErrInsufficientPot)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Adjust pot zero",
			body:           `{"delta":"0"}`,
			call:           func(h *TreasureHandler) http.HandlerFunc { return h.HandleAdjustPot },
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Adjust keys",
			body: `{"color":"red","delta":2}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleAdjustKeys },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("AdjustKeys", mock.Anything, "evt-1", "team-1", domain.KeyRed, 2).
					Return(&treasure.TransitionResult{Team: &domain.Team{TeamID: "team-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Adjust keys wildcard color",
			body:           `{"color":"any","delta":1}`,
			call:           func(h *TreasureHandler) http.HandlerFunc { return h.HandleAdjustKeys },
			setupMock:      func(m *mocks.MockTreasureService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Storage failure hides detail",
			body: `{"node_id":"n1"}`,
			call: func(h *TreasureHandler) http.HandlerFunc { return h.HandleCompleteNode },
			setupMock: func(m *mocks.MockTreasureService) {
				m.On("CompleteNode", mock.Anything, "evt-1", "team-1", "n1").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTreasureService(t)
			tt.setupMock(mockSvc)

			req := withParams(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), teamParams())
			rec := httptest.NewRecorder()
			tt.call(NewTreasureHandler(mockSvc))(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInvalidDateRange, http.StatusBadRequest},
		{domain.ErrUnknownContent, http.StatusBadRequest},
		{domain.ErrTeamNotFound, http.StatusNotFound},
		{domain.ErrNodeNotFound, http.StatusNotFound},
		{domain.ErrBuffNotFound, http.StatusNotFound},
		{domain.ErrBuffAlreadyApplied, http.StatusConflict},
		{domain.ErrMapNotGenerated, http.StatusConflict},
		{domain.ErrEventNotActive, http.StatusConflict},
		{domain.ErrNoObjectiveOnNode, http.StatusUnprocessableEntity},
		{domain.ErrInvalidMap, http.StatusInternalServerError},
		{domain.ErrDuplicateNodeID, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(fmtWrap(tt.err))
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func fmtWrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("outer: %w", err)
}
