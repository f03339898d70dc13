package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatGP renders an amount with thousands separators, e.g. "1,500,000 gp"
func formatGP(g domain.GP) string {
	if n, ok := g.Int64(); ok {
		return printer.Sprintf("%d gp", n)
	}
	return g.String() + " gp"
}

// formatKeys renders "2 red, 1 blue"
func formatKeys(keys []domain.KeyAmount) string {
	if len(keys) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", k.Quantity, k.Color))
	}
	return strings.Join(parts, ", ")
}

// formatBuffType turns "kill_reduction_minor" into "Kill Reduction Minor"
func formatBuffType(t domain.BuffType) string {
	return titleCase.String(strings.ReplaceAll(string(t), "_", " "))
}

func formatBuffs(types []domain.BuffType) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, formatBuffType(t))
	}
	return strings.Join(names, ", ")
}

// formatStandings lists the top n entries, one per line:
// "1. Alpha: 2,500,000 gp (12 nodes)"
func formatStandings(entries []domain.LeaderboardEntry, n int) string {
	if len(entries) > n {
		entries = entries[:n]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s: %s (%d nodes)", e.Rank, e.Name, formatGP(e.CurrentPot), e.CompletedCount))
	}
	return strings.Join(lines, "\n")
}
