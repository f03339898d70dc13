//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
)

func decode[T any](t *testing.T, resp *http.Response, body []byte, want int) T {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, body)
	}
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return v
}

func TestRushFlow(t *testing.T) {
	name := fmt.Sprintf("staging-%d", time.Now().UnixNano())
	resp, body := makeRequest(t, "POST", "/api/v1/events", map[string]any{
		"name":             name,
		"prize_pool_total": "1000000000",
		"num_teams":        2,
		"players_per_team": 5,
		"duration_days":    7,
	})
	evt := decode[domain.TreasureEvent](t, resp, body, http.StatusCreated)
	base := "/api/v1/events/" + evt.EventID

	resp, body = makeRequest(t, "POST", base+"/teams", map[string]any{"name": "Staging Team"})
	team := decode[domain.Team](t, resp, body, http.StatusCreated)

	resp, body = makeRequest(t, "POST", base+"/map/generate", map[string]any{"seed": 42})
	gen := decode[treasure.GenerateResult](t, resp, body, http.StatusCreated)
	if len(gen.Map.Nodes) != gen.Event.DerivedValues.TotalNodes {
		t.Fatalf("expected %d nodes, got %d", gen.Event.DerivedValues.TotalNodes, len(gen.Map.Nodes))
	}

	resp, body = makeRequest(t, "GET", base+"/teams/"+team.TeamID, nil)
	view := decode[treasure.TeamView](t, resp, body, http.StatusOK)
	if len(view.Team.AvailableNodes) == 0 {
		t.Fatal("expected available nodes after generation")
	}
	target := view.Team.AvailableNodes[0]

	resp, body = makeRequest(t, "POST", base+"/teams/"+team.TeamID+"/complete", map[string]any{"node_id": target})
	res := decode[treasure.TransitionResult](t, resp, body, http.StatusOK)
	if !slices.Contains(res.Team.CompletedNodes, target) {
		t.Errorf("expected %s to be completed", target)
	}

	resp, _ = makeRequest(t, "POST", base+"/teams/"+team.TeamID+"/complete", map[string]any{"node_id": target})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for a repeated completion, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, "GET", base+"/leaderboard", nil)
	board := decode[[]domain.LeaderboardEntry](t, resp, body, http.StatusOK)
	if len(board) != 1 || board[0].Rank != 1 {
		t.Errorf("unexpected leaderboard: %+v", board)
	}

	resp, body = makeRequest(t, "POST", base+"/close", nil)
	closed := decode[treasure.CloseResult](t, resp, body, http.StatusOK)
	if closed.Event.Status != domain.EventStatusCompleted {
		t.Errorf("expected completed status, got %s", closed.Event.Status)
	}

	resp, _ = makeRequest(t, "POST", base+"/teams/"+team.TeamID+"/uncomplete", map[string]any{"node_id": target})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 on a closed event, got %d", resp.StatusCode)
	}
}
