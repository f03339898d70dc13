package treasure

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Leaderboard ranks an event's teams by pot, then completed node count.
// Teams tied on both share a rank; names only break display order.
func (s *service) Leaderboard(ctx context.Context, eventID string) ([]domain.LeaderboardEntry, error) {
	if _, err := s.repo.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	teams, err := s.repo.ListTeams(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadTeams, err)
	}
	return rankTeams(teams), nil
}

func rankTeams(teams []domain.Team) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		entries = append(entries, domain.LeaderboardEntry{
			TeamID:         t.TeamID,
			Name:           t.Name,
			CurrentPot:     t.CurrentPot,
			CompletedCount: len(t.CompletedNodes),
			TotalKeys:      t.TotalKeys(),
		})
	}

	slices.SortStableFunc(entries, func(a, b domain.LeaderboardEntry) int {
		if c := b.CurrentPot.Cmp(a.CurrentPot); c != 0 {
			return c
		}
		if a.CompletedCount != b.CompletedCount {
			return b.CompletedCount - a.CompletedCount
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	for i := range entries {
		if i > 0 && entries[i].CurrentPot.Cmp(entries[i-1].CurrentPot) == 0 &&
			entries[i].CompletedCount == entries[i-1].CompletedCount {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries
}
