package repository

import (
	"context"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// TreasureHunt defines the interface for treasure event persistence
type TreasureHunt interface {
	CreateEvent(ctx context.Context, event *domain.TreasureEvent) error
	GetEvent(ctx context.Context, eventID string) (*domain.TreasureEvent, error)
	GetNodes(ctx context.Context, eventID string) ([]domain.Node, error)
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeam(ctx context.Context, eventID, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, eventID string) ([]domain.Team, error)
	ListExpiredEvents(ctx context.Context, cutoff time.Time) ([]string, error)
	BeginTx(ctx context.Context) (TreasureTx, error)
}

// TreasureTx defines the interface for treasure event transactions.
// ForUpdate reads take row locks held until Commit or Rollback.
type TreasureTx interface {
	Tx
	GetEventForUpdate(ctx context.Context, eventID string) (*domain.TreasureEvent, error)
	GetEventForShare(ctx context.Context, eventID string) (*domain.TreasureEvent, error)
	UpdateEvent(ctx context.Context, event *domain.TreasureEvent) error
	ReplaceNodes(ctx context.Context, eventID string, nodes []domain.Node) error
	GetTeamForUpdate(ctx context.Context, eventID, teamID string) (*domain.Team, error)
	ListTeamsForUpdate(ctx context.Context, eventID string) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
}
