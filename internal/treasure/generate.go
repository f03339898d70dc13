package treasure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/logger"
	"github.com/osse101/GielinorRush_Go/internal/mapgen"
	"github.com/osse101/GielinorRush_Go/internal/metrics"
	"github.com/osse101/GielinorRush_Go/internal/objective"
	"github.com/osse101/GielinorRush_Go/internal/progression"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// GenerateMap builds a fresh map for the event and resets every team to the
// new start node. Nodes, event metadata and teams are written in one
// transaction, so a failure leaves the previous map and progress intact.
func (s *service) GenerateMap(ctx context.Context, eventID string, opts GenerateOptions) (*GenerateResult, error) {
	log := logger.FromContext(ctx)

	if err := objective.ValidateSelections(opts.ContentSelections); err != nil {
		return nil, err
	}

	rw := s.locks.GetRWLock(lockPrefixEvent + eventID)
	rw.Lock()
	defer rw.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	evt, err := tx.GetEventForUpdate(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if evt.Status == domain.EventStatusCompleted {
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotEditable, ErrMsgEventCompleted)
	}
	if opts.ContentSelections != nil {
		evt.ContentSelections = opts.ContentSelections
	}

	seed := s.seed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	generated, derived, err := s.generate(evt, seed)
	if err != nil {
		metrics.MapGenerationFailures.WithLabelValues(failureReason(err)).Inc()
		log.Warn(LogMsgMapGenerationFailed, "event_id", eventID, "seed", seed, "error", err)
		return nil, err
	}

	for i := range generated.Nodes {
		generated.Nodes[i].EventID = eventID
	}
	if err := tx.ReplaceNodes(ctx, eventID, generated.Nodes); err != nil {
		metrics.MapGenerationFailures.WithLabelValues(FailureReasonStorage).Inc()
		log.Error(LogMsgFailedToReplaceNodes, "event_id", eventID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveNodes, err)
	}

	evt.DerivedValues = &derived
	evt.MapStructure = &generated.MapStructure
	evt.MapVersion++
	if evt.Status == domain.EventStatusDraft {
		evt.Status = domain.EventStatusActive
	}
	evt.UpdatedAt = s.now()
	if err := tx.UpdateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveEvent, err)
	}

	teams, err := tx.ListTeamsForUpdate(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadTeams, err)
	}
	start := generated.MapStructure.StartNode
	for i := range teams {
		reset := s.engine.ResetTeam(&teams[i], start)
		if err := tx.UpdateTeam(ctx, reset); err != nil {
			log.Error(LogMsgFailedToUpdateTeam, "event_id", eventID, "team_id", reset.TeamID, "error", err)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveTeam, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFailedToCommit, "event_id", eventID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	s.graphs.Set(eventID, evt.MapVersion, progression.NewGraph(generated.Nodes))

	log.Info(LogMsgMapGenerated,
		"event_id", eventID,
		"map_version", evt.MapVersion,
		"seed", seed,
		"nodes", len(generated.Nodes),
		"teams_reset", len(teams))

	s.publisher.PublishWithRetry(ctx, event.NewMapGeneratedEvent(domain.MapGeneratedPayload{
		EventID:    eventID,
		EventName:  evt.Name,
		MapVersion: evt.MapVersion,
		TotalNodes: len(generated.Nodes),
		NumInns:    derived.NumInns,
		TeamsReset: len(teams),
		Timestamp:  evt.UpdatedAt.Unix(),
	}))

	return &GenerateResult{
		Event:      evt,
		Map:        generated,
		Seed:       seed,
		TeamsReset: len(teams),
	}, nil
}

// generate runs one seeded generation and times it
func (s *service) generate(evt *domain.TreasureEvent, seed int64) (*domain.GeneratedMap, domain.DerivedValues, error) {
	start := time.Now()
	defer func() {
		metrics.MapGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	derived, err := mapgen.ComputeDerivedValues(evt.Config)
	if err != nil {
		return nil, domain.DerivedValues{}, err
	}

	generated, err := mapgen.NewGenerator(seed, s.now).Generate(evt.Config, derived, evt.ContentSelections)
	if err != nil {
		return nil, domain.DerivedValues{}, fmt.Errorf("%s: %w", ErrMsgFailedToGenerate, err)
	}
	return generated, derived, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoObjectiveAvailable), errors.Is(err, domain.ErrUnknownContent):
		return FailureReasonContent
	case errors.Is(err, domain.ErrInvalidMap), errors.Is(err, domain.ErrDuplicateNodeID):
		return FailureReasonInvalid
	default:
		return FailureReasonConfig
	}
}
