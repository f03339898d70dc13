// Package treasure runs Gielinor Rush events on top of the map generator and
// progression engine: it persists events, maps and teams, serializes
// concurrent actions, and publishes domain events.
package treasure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GielinorRush_Go/internal/concurrency"
	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/logger"
	"github.com/osse101/GielinorRush_Go/internal/mapgen"
	"github.com/osse101/GielinorRush_Go/internal/objective"
	"github.com/osse101/GielinorRush_Go/internal/progression"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// Service defines the interface for treasure hunt operations
type Service interface {
	// Events and maps
	CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.TreasureEvent, error)
	GetEvent(ctx context.Context, eventID string) (*domain.TreasureEvent, error)
	GenerateMap(ctx context.Context, eventID string, opts GenerateOptions) (*GenerateResult, error)
	GetMap(ctx context.Context, eventID string) (*domain.GeneratedMap, error)
	CloseEvent(ctx context.Context, eventID string) (*CloseResult, error)
	CloseExpiredEvents(ctx context.Context) (int, error)

	// Teams
	CreateTeam(ctx context.Context, eventID string, req CreateTeamRequest) (*domain.Team, error)
	GetTeam(ctx context.Context, eventID, teamID string) (*TeamView, error)
	Leaderboard(ctx context.Context, eventID string) ([]domain.LeaderboardEntry, error)

	// Progression
	CompleteNode(ctx context.Context, eventID, teamID, nodeID string) (*TransitionResult, error)
	UncompleteNode(ctx context.Context, eventID, teamID, nodeID string) (*TransitionResult, error)
	ApplyBuff(ctx context.Context, eventID, teamID, buffID, nodeID string) (*TransitionResult, error)
	PurchaseInnReward(ctx context.Context, eventID, teamID, rewardID string) (*TransitionResult, error)

	// Admin overrides
	GrantBuff(ctx context.Context, eventID, teamID string, buffType domain.BuffType) (*TransitionResult, error)
	AdjustPot(ctx context.Context, eventID, teamID string, delta domain.GP) (*TransitionResult, error)
	AdjustKeys(ctx context.Context, eventID, teamID string, color domain.KeyColor, delta int) (*TransitionResult, error)
}

// CreateEventRequest describes a new event
type CreateEventRequest struct {
	Name              string                    `json:"name"`
	Config            domain.EventConfig        `json:"config"`
	ContentSelections *domain.ContentSelections `json:"content_selections,omitempty"`
}

// CreateTeamRequest describes a new team
type CreateTeamRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members,omitempty"`
}

// GenerateOptions tunes a generation run. A nil Seed draws one from the clock.
type GenerateOptions struct {
	Seed              *int64                    `json:"seed,omitempty"`
	ContentSelections *domain.ContentSelections `json:"content_selections,omitempty"`
}

// GenerateResult is the outcome of a (re)generation
type GenerateResult struct {
	Event      *domain.TreasureEvent `json:"event"`
	Map        *domain.GeneratedMap  `json:"map"`
	Seed       int64                 `json:"seed"`
	TeamsReset int                   `json:"teams_reset"`
}

// TeamView is a team plus the objectives it currently sees on available
// nodes, with its own buffs applied.
type TeamView struct {
	Team                *domain.Team                 `json:"team"`
	EffectiveObjectives map[string]*domain.Objective `json:"effective_objectives"`
}

// TransitionResult is the new team state and what the action changed
type TransitionResult struct {
	Team    *domain.Team         `json:"team"`
	Outcome *progression.Outcome `json:"outcome"`
}

// Options configures a service. Zero values use defaults.
type Options struct {
	GraphCacheSize int
	GraphCacheTTL  time.Duration
	Now            func() time.Time
	Seed           func() int64
	NewID          func() string
	BuffFactory    progression.BuffFactory
}

type service struct {
	repo      repository.TreasureHunt
	publisher event.Publisher
	engine    *progression.Engine
	locks     *concurrency.LockManager
	graphs    *graphCache
	now       func() time.Time
	seed      func() int64
	newID     func() string
}

// NewService creates a new treasure hunt service
func NewService(repo repository.TreasureHunt, publisher event.Publisher, opts Options) Service {
	if opts.GraphCacheSize <= 0 {
		opts.GraphCacheSize = DefaultGraphCacheSize
	}
	if opts.GraphCacheTTL <= 0 {
		opts.GraphCacheTTL = DefaultGraphCacheTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == nil {
		now := opts.Now
		opts.Seed = func() int64 { return now().UnixNano() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &service{
		repo:      repo,
		publisher: publisher,
		engine:    progression.NewEngine(opts.Now, opts.BuffFactory),
		locks:     concurrency.NewLockManager(),
		graphs:    newGraphCache(opts.GraphCacheSize, opts.GraphCacheTTL),
		now:       opts.Now,
		seed:      opts.Seed,
		newID:     opts.NewID,
	}
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.TreasureEvent, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(req.Name, MaxEventNameLength)
	if err != nil {
		return nil, err
	}

	cfg := mapgen.WithDefaults(req.Config)
	derived, err := mapgen.ComputeDerivedValues(cfg)
	if err != nil {
		return nil, err
	}
	if err := objective.ValidateSelections(req.ContentSelections); err != nil {
		return nil, err
	}

	now := s.now()
	evt := &domain.TreasureEvent{
		EventID:           s.newID(),
		Name:              name,
		Status:            domain.EventStatusDraft,
		Config:            cfg,
		DerivedValues:     &derived,
		ContentSelections: req.ContentSelections,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.CreateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveEvent, err)
	}

	log.Info(LogMsgEventCreated, "event_id", evt.EventID, "name", evt.Name, "total_nodes", derived.TotalNodes)
	return evt, nil
}

func (s *service) GetEvent(ctx context.Context, eventID string) (*domain.TreasureEvent, error) {
	return s.repo.GetEvent(ctx, eventID)
}

func (s *service) GetMap(ctx context.Context, eventID string) (*domain.GeneratedMap, error) {
	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.MapVersion == 0 || evt.MapStructure == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMapNotGenerated, eventID)
	}

	g, err := s.graph(ctx, evt)
	if err != nil {
		return nil, err
	}
	return &domain.GeneratedMap{MapStructure: *evt.MapStructure, Nodes: g.Nodes()}, nil
}

func (s *service) CreateTeam(ctx context.Context, eventID string, req CreateTeamRequest) (*domain.Team, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(req.Name, MaxTeamNameLength)
	if err != nil {
		return nil, err
	}
	if len(req.Members) > MaxTeamMembers {
		return nil, fmt.Errorf("%w: %s (max %d)", domain.ErrInvalidInput, ErrMsgTooManyMembers, MaxTeamMembers)
	}

	// Regeneration resets teams under the write lock; a team created
	// concurrently must see the final start node.
	rw := s.locks.GetRWLock(lockPrefixEvent + eventID)
	rw.RLock()
	defer rw.RUnlock()

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.Status == domain.EventStatusCompleted {
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotEditable, ErrMsgEventCompleted)
	}

	start := ""
	if evt.MapStructure != nil {
		start = evt.MapStructure.StartNode
	}

	team := progression.NewTeamState(s.newID(), eventID, name, start)
	team.Members = append([]string{}, req.Members...)
	team.CreatedAt = s.now()
	team.UpdatedAt = team.CreatedAt

	if err := s.repo.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	log.Info(LogMsgTeamCreated, "event_id", eventID, "team_id", team.TeamID, "name", team.Name)
	return team, nil
}

func (s *service) GetTeam(ctx context.Context, eventID, teamID string) (*TeamView, error) {
	team, err := s.repo.GetTeam(ctx, eventID, teamID)
	if err != nil {
		return nil, err
	}
	view := &TeamView{Team: team, EffectiveObjectives: map[string]*domain.Objective{}}

	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.MapVersion == 0 {
		return view, nil
	}

	g, err := s.graph(ctx, evt)
	if err != nil {
		return nil, err
	}
	for _, id := range team.AvailableNodes {
		node, ok := g.Node(id)
		if !ok {
			continue
		}
		if obj := progression.EffectiveObjective(team, node); obj != nil {
			view.EffectiveObjectives[id] = obj
		}
	}
	return view, nil
}

// graph returns the event's node graph, from cache when it matches the
// event's map version.
func (s *service) graph(ctx context.Context, evt *domain.TreasureEvent) (*progression.Graph, error) {
	if g, ok := s.graphs.Get(evt.EventID, evt.MapVersion); ok {
		return g, nil
	}

	nodes, err := s.repo.GetNodes(ctx, evt.EventID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToLoadGraph, "event_id", evt.EventID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadGraph, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMapNotGenerated, evt.EventID)
	}

	g := progression.NewGraph(nodes)
	s.graphs.Set(evt.EventID, evt.MapVersion, g)
	logger.FromContext(ctx).Debug(LogMsgGraphLoaded, "event_id", evt.EventID, "map_version", evt.MapVersion, "nodes", g.Len())
	return g, nil
}

func validateName(name string, max int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if len([]rune(name)) > max {
		return "", fmt.Errorf("%w: %s (max %d characters)", domain.ErrInvalidInput, ErrMsgNameTooLong, max)
	}
	return name, nil
}
