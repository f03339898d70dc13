package treasure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// clone deep-copies v through JSON so tests never share state with the store
func clone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return out
}

// memoryRepo is an in-memory repository.TreasureHunt. Transactions stage
// writes and publish them on Commit.
type memoryRepo struct {
	mu     sync.Mutex
	events map[string]domain.TreasureEvent
	nodes  map[string][]domain.Node
	teams  map[string]domain.Team
	order  []string

	getNodesCalls int

	// Fault injection, checked inside transactions
	failUpdateTeam error
	failCommit     error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		events: map[string]domain.TreasureEvent{},
		nodes:  map[string][]domain.Node{},
		teams:  map[string]domain.Team{},
	}
}

func (r *memoryRepo) CreateEvent(_ context.Context, evt *domain.TreasureEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[evt.EventID] = clone(*evt)
	return nil
}

func (r *memoryRepo) GetEvent(_ context.Context, eventID string) (*domain.TreasureEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.event(eventID)
}

func (r *memoryRepo) event(eventID string) (*domain.TreasureEvent, error) {
	evt, ok := r.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
	}
	c := clone(evt)
	return &c, nil
}

func (r *memoryRepo) GetNodes(_ context.Context, eventID string) ([]domain.Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getNodesCalls++
	return clone(r.nodes[eventID]), nil
}

func (r *memoryRepo) CreateTeam(_ context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[team.EventID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, team.EventID)
	}
	for _, t := range r.teams {
		if t.EventID == team.EventID && t.Name == team.Name {
			return fmt.Errorf("%w: %s", domain.ErrTeamNameTaken, team.Name)
		}
	}
	r.teams[team.TeamID] = clone(*team)
	r.order = append(r.order, team.TeamID)
	return nil
}

func (r *memoryRepo) GetTeam(_ context.Context, eventID, teamID string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.team(eventID, teamID)
}

func (r *memoryRepo) team(eventID, teamID string) (*domain.Team, error) {
	t, ok := r.teams[teamID]
	if !ok || t.EventID != eventID {
		return nil, fmt.Errorf("%w: %s", domain.ErrTeamNotFound, teamID)
	}
	c := clone(t)
	return &c, nil
}

func (r *memoryRepo) ListTeams(_ context.Context, eventID string) ([]domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listTeams(eventID), nil
}

func (r *memoryRepo) listTeams(eventID string) []domain.Team {
	out := []domain.Team{}
	for _, id := range r.order {
		if t := r.teams[id]; t.EventID == eventID {
			out = append(out, clone(t))
		}
	}
	return out
}

func (r *memoryRepo) ListExpiredEvents(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	type due struct {
		id string
		at time.Time
	}
	var found []due
	for id, e := range r.events {
		at, ok := e.Config.ClosesAt()
		if e.Status == domain.EventStatusActive && ok && !at.After(cutoff) {
			found = append(found, due{id, at})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at.Before(found[j].at) })
	ids := []string{}
	for _, d := range found {
		ids = append(ids, d.id)
	}
	return ids, nil
}

func (r *memoryRepo) BeginTx(_ context.Context) (repository.TreasureTx, error) {
	return &memoryTx{
		repo:   r,
		events: map[string]domain.TreasureEvent{},
		nodes:  map[string][]domain.Node{},
		teams:  map[string]domain.Team{},
	}, nil
}

// teamByName is a test helper
func (r *memoryRepo) teamByName(name string) domain.Team {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.Name == name {
			return clone(t)
		}
	}
	panic("no team " + name)
}

type memoryTx struct {
	repo   *memoryRepo
	events map[string]domain.TreasureEvent
	nodes  map[string][]domain.Node
	teams  map[string]domain.Team
	done   bool
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

func (t *memoryTx) Commit(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.failCommit != nil {
		return t.repo.failCommit
	}
	for id, e := range t.events {
		t.repo.events[id] = e
	}
	for id, n := range t.nodes {
		t.repo.nodes[id] = n
	}
	for id, tm := range t.teams {
		t.repo.teams[id] = tm
	}
	return nil
}

func (t *memoryTx) Rollback(_ context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	return nil
}

func (t *memoryTx) GetEventForUpdate(_ context.Context, eventID string) (*domain.TreasureEvent, error) {
	if e, ok := t.events[eventID]; ok {
		c := clone(e)
		return &c, nil
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	return t.repo.event(eventID)
}

func (t *memoryTx) GetEventForShare(ctx context.Context, eventID string) (*domain.TreasureEvent, error) {
	return t.GetEventForUpdate(ctx, eventID)
}

func (t *memoryTx) UpdateEvent(_ context.Context, evt *domain.TreasureEvent) error {
	t.events[evt.EventID] = clone(*evt)
	return nil
}

func (t *memoryTx) ReplaceNodes(_ context.Context, eventID string, nodes []domain.Node) error {
	seen := map[string]struct{}{}
	for _, n := range nodes {
		if _, dup := seen[n.NodeID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNodeID, n.NodeID)
		}
		seen[n.NodeID] = struct{}{}
	}
	t.nodes[eventID] = clone(nodes)
	return nil
}

func (t *memoryTx) GetTeamForUpdate(_ context.Context, eventID, teamID string) (*domain.Team, error) {
	if tm, ok := t.teams[teamID]; ok && tm.EventID == eventID {
		c := clone(tm)
		return &c, nil
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	return t.repo.team(eventID, teamID)
}

func (t *memoryTx) ListTeamsForUpdate(_ context.Context, eventID string) ([]domain.Team, error) {
	t.repo.mu.Lock()
	teams := t.repo.listTeams(eventID)
	t.repo.mu.Unlock()

	for i := range teams {
		if staged, ok := t.teams[teams[i].TeamID]; ok {
			teams[i] = clone(staged)
		}
	}
	return teams, nil
}

func (t *memoryTx) UpdateTeam(_ context.Context, team *domain.Team) error {
	t.repo.mu.Lock()
	fail := t.repo.failUpdateTeam
	_, exists := t.repo.teams[team.TeamID]
	t.repo.mu.Unlock()

	if fail != nil {
		return fail
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrTeamNotFound, team.TeamID)
	}
	t.teams[team.TeamID] = clone(*team)
	return nil
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) ofType(t event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, string(e.Type))
	}
	sort.Strings(out)
	return out
}
