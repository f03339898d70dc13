package treasure

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/logger"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// CloseResult is a closed event and its final standings
type CloseResult struct {
	Event     *domain.TreasureEvent     `json:"event"`
	Standings []domain.LeaderboardEntry `json:"standings"`
}

func (s *service) CloseEvent(ctx context.Context, eventID string) (*CloseResult, error) {
	return s.closeEvent(ctx, eventID, domain.CloseReasonAdmin)
}

// CloseExpiredEvents closes every active event whose end has passed. Events
// closed by someone else in the meantime are skipped; other failures are
// collected and the sweep carries on.
func (s *service) CloseExpiredEvents(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.repo.ListExpiredEvents(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToListExpired, err)
	}

	var errs []error
	closed := 0
	for _, id := range ids {
		if _, err := s.closeEvent(ctx, id, domain.CloseReasonExpired); err != nil {
			if errors.Is(err, domain.ErrEventNotEditable) || errors.Is(err, domain.ErrEventNotActive) {
				continue
			}
			log.Error(LogMsgFailedToCloseEvent, "event_id", id, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		closed++
	}
	return closed, errors.Join(errs...)
}

// closeEvent freezes an active event. Team rows are locked so the standings
// match what was committed.
func (s *service) closeEvent(ctx context.Context, eventID, reason string) (*CloseResult, error) {
	log := logger.FromContext(ctx)

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
	switch evt.Status {
	case domain.EventStatusCompleted:
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotEditable, ErrMsgEventCompleted)
	case domain.EventStatusDraft:
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotActive, ErrMsgEventIsDraft)
	}

	teams, err := tx.ListTeamsForUpdate(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadTeams, err)
	}

	evt.Status = domain.EventStatusCompleted
	evt.UpdatedAt = s.now()
	if err := tx.UpdateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveEvent, err)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFailedToCommit, "event_id", eventID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}

	standings := rankTeams(teams)
	log.Info(LogMsgEventClosed, "event_id", eventID, "reason", reason, "teams", len(teams))

	s.publisher.PublishWithRetry(ctx, event.NewEventClosedEvent(domain.EventClosedPayload{
		EventID:   eventID,
		EventName: evt.Name,
		Reason:    reason,
		Standings: standings,
		Timestamp: evt.UpdatedAt.Unix(),
	}))

	return &CloseResult{Event: evt, Standings: standings}, nil
}
