package objective

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Candidate is a ready-to-use objective drawn from one bucket.
type Candidate struct {
	Type      domain.ObjectiveType `json:"type"`
	Target    string               `json:"target"`
	ContentID string               `json:"content_id"`
	Quantity  int                  `json:"quantity"`
	// Custom marks a quantity set by the organiser rather than the catalog.
	Custom bool `json:"custom"`
}

// Buckets maps a difficulty bucket to its candidates.
type Buckets map[domain.ContentDifficulty][]Candidate

// FormattedObjectives is the per-type, per-difficulty view of enabled content.
type FormattedObjectives map[domain.ObjectiveType]Buckets

var difficulties = []domain.ContentDifficulty{domain.ContentEasy, domain.ContentMedium, domain.ContentHard}

// BuildFormattedObjectives partitions enabled catalog content into buckets.
// It never fails; callers must handle empty buckets.
func BuildFormattedObjectives(sel *domain.ContentSelections) FormattedObjectives {
	out := make(FormattedObjectives, len(domain.ObjectiveTypes))
	for _, t := range domain.ObjectiveTypes {
		out[t] = Buckets{}
	}

	for _, e := range entries {
		if !isEnabled(e.ID, sel) {
			continue
		}
		if e.RequiredContent != "" && !isEnabled(e.RequiredContent, sel) {
			continue
		}

		buckets := []domain.ContentDifficulty{e.Category}
		if e.Category == "" {
			buckets = difficulties
		}
		for _, d := range buckets {
			out[e.Type][d] = append(out[e.Type][d], newCandidate(e, d, sel))
		}
	}

	return out
}

func newCandidate(e Entry, d domain.ContentDifficulty, sel *domain.ContentSelections) Candidate {
	c := Candidate{
		Type:      e.Type,
		Target:    e.Name,
		ContentID: e.ID,
		Quantity:  DefaultQuantity(e.Type, d),
	}
	if sel != nil {
		if q, ok := sel.CustomQuantities[e.ID]; ok && q > 0 {
			c.Quantity = q
			c.Custom = true
		}
	}
	return c
}

func isEnabled(id string, sel *domain.ContentSelections) bool {
	if sel != nil {
		if v, ok := sel.Enabled[id]; ok {
			return v
		}
	}
	e, ok := byID[id]
	return ok && e.DefaultEnabled
}

// TypesFor returns the objective types with at least one candidate in d, in
// stable order.
func (f FormattedObjectives) TypesFor(d domain.ContentDifficulty) []domain.ObjectiveType {
	var types []domain.ObjectiveType
	for _, t := range domain.ObjectiveTypes {
		if len(f[t][d]) > 0 {
			types = append(types, t)
		}
	}
	return types
}

// Count returns the number of candidates across all types for d.
func (f FormattedObjectives) Count(d domain.ContentDifficulty) int {
	n := 0
	for _, b := range f {
		n += len(b[d])
	}
	return n
}

// ValidateSelections rejects unknown content ids and non-positive overrides.
func ValidateSelections(sel *domain.ContentSelections) error {
	if sel == nil {
		return nil
	}

	unknown := map[string]struct{}{}
	for id := range sel.Enabled {
		if _, ok := byID[id]; !ok {
			unknown[id] = struct{}{}
		}
	}
	for id, q := range sel.CustomQuantities {
		if _, ok := byID[id]; !ok {
			unknown[id] = struct{}{}
			continue
		}
		if q <= 0 {
			return fmt.Errorf("%w: custom quantity for %q must be positive", domain.ErrInvalidInput, id)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	ids := make([]string, 0, len(unknown))
	for id := range unknown {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if s := Suggest(id); s != "" {
			parts = append(parts, fmt.Sprintf("%s (did you mean %s?)", id, s))
		} else {
			parts = append(parts, id)
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownContent, strings.Join(parts, ", "))
}

// Suggest returns the closest catalog id to id, or "" when nothing is near.
func Suggest(id string) string {
	needle := strings.ToLower(strings.TrimSpace(id))
	best, bestDist := "", -1
	for _, e := range entries {
		dist := levenshtein.ComputeDistance(needle, e.ID)
		if dist > suggestLimit(len(e.ID)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = e.ID, dist
		}
	}
	return best
}

func suggestLimit(n int) int {
	if n <= 6 {
		return 2
	}
	return n / 3
}
