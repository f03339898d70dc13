package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type SeedCommand struct {
	client *http.Client
}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Create a demo event with teams and a generated map through the API"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	baseURL := fs.String("url", "http://localhost:8080", "Server base URL")
	apiKey := fs.String("key", os.Getenv("API_KEY"), "API key (defaults to $API_KEY)")
	name := fs.String("name", "Demo Rush", "Event name")
	pool := fs.String("pool", "2000000000", "Prize pool in GP")
	teams := fs.Int("teams", 3, "Number of teams")
	players := fs.Int("players", 5, "Players per team")
	days := fs.Int("days", 7, "Duration in days")
	seed := fs.Int64("seed", 1, "Generator seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	api := apiClient{base: *baseURL + "/api/v1", key: *apiKey, http: c.client}
	if api.http == nil {
		api.http = &http.Client{Timeout: 30 * time.Second}
	}

	PrintHeader("Seeding demo event")

	var evt struct {
		EventID string `json:"event_id"`
	}
	if err := api.post(ctx, "/events", map[string]any{
		"name":             *name,
		"prize_pool_total": *pool,
		"num_teams":        *teams,
		"players_per_team": *players,
		"duration_days":    *days,
	}, &evt); err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	PrintSuccess("Event %s created", evt.EventID)

	for i := 1; i <= *teams; i++ {
		team := map[string]any{"name": fmt.Sprintf("Team %d", i)}
		if err := api.post(ctx, "/events/"+evt.EventID+"/teams", team, nil); err != nil {
			return fmt.Errorf("creating team %d: %w", i, err)
		}
	}
	PrintSuccess("%d teams registered", *teams)

	var gen struct {
		Map struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"map"`
	}
	if err := api.post(ctx, "/events/"+evt.EventID+"/map/generate", map[string]any{"seed": *seed}, &gen); err != nil {
		return fmt.Errorf("generating map: %w", err)
	}
	PrintSuccess("Map generated with %d nodes", len(gen.Map.Nodes))
	return nil
}

type apiClient struct {
	base string
	key  string
	http *http.Client
}

func (a apiClient) post(ctx context.Context, path string, body, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", a.key)

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if dst == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
