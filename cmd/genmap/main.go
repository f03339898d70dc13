// Command genmap generates a Gielinor Rush map offline and prints it as JSON.
//
//	genmap -pool 2000000000 -teams 4 -players 5 -days 10 -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/mapgen"
)

// output is what genmap prints
type output struct {
	Seed    int64                `json:"seed"`
	Config  domain.EventConfig   `json:"config"`
	Derived domain.DerivedValues `json:"derived"`
	Map     *domain.GeneratedMap `json:"map,omitempty"`
	Summary map[string]int       `json:"summary"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "genmap: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("genmap", flag.ContinueOnError)
	pool := fs.String("pool", "1000000000", "Prize pool in GP")
	teams := fs.Int("teams", 4, "Number of teams")
	players := fs.Int("players", 5, "Players per team")
	days := fs.Int("days", 7, "Event duration in days")
	ratio := fs.Int("inn-ratio", mapgen.DefaultNodeToInnRatio, "Standard nodes per inn")
	split := fs.Float64("split", mapgen.DefaultRewardSplitRatio, "Share of the pot paid through nodes")
	difficulty := fs.String("difficulty", string(mapgen.DefaultDifficulty), "easy, normal, hard or sweatlord")
	seed := fs.Int64("seed", 0, "Generator seed (0 uses the clock)")
	summaryOnly := fs.Bool("summary", false, "Print only derived values and node counts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prize, err := domain.ParseGP(*pool)
	if err != nil {
		return fmt.Errorf("parsing -pool: %w", err)
	}
	if *seed == 0 {
		*seed = now().UnixNano()
	}

	cfg := mapgen.WithDefaults(domain.EventConfig{
		PrizePoolTotal:   prize,
		NumTeams:         *teams,
		PlayersPerTeam:   *players,
		NodeToInnRatio:   *ratio,
		RewardSplitRatio: *split,
		Difficulty:       domain.Difficulty(*difficulty),
		DurationDays:     *days,
	})
	derived, err := mapgen.ComputeDerivedValues(cfg)
	if err != nil {
		return err
	}

	m, err := mapgen.NewGenerator(*seed, now).Generate(cfg, derived, nil)
	if err != nil {
		return err
	}

	out := output{
		Seed:    *seed,
		Config:  cfg,
		Derived: derived,
		Summary: map[string]int{},
	}
	for _, n := range m.Nodes {
		out.Summary[string(n.NodeType)]++
	}
	if !*summaryOnly {
		out.Map = m
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
