package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/GielinorRush_Go/internal/event"
)

type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string {
	return "deadletters"
}

func (c *DeadLettersCommand) Description() string {
	return "List events that failed every publish attempt"
}

func (c *DeadLettersCommand) Run(_ context.Context, args []string) error {
	defaultPath := os.Getenv("EVENT_DEADLETTER_PATH")
	if defaultPath == "" {
		defaultPath = event.DefaultDeadLetterPath
	}

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("path", defaultPath, "Dead-letter file")
	eventType := fs.String("type", "", "Only show this event type, e.g. treasure.inn_purchase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Dead letters (%s)", *path))
	entries, err := event.ReadDeadLetters(*path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *path, err)
	}

	counts := map[event.Type]int{}
	for _, e := range entries {
		if *eventType != "" && string(e.Event.Type) != *eventType {
			continue
		}
		counts[e.Event.Type]++
		eventID, _ := e.Event.GetMetadataValue(event.MetaEventID).(string)
		PrintWarning("%s %s event=%s attempts=%d: %s",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Event.Type, eventID, e.Attempts, e.LastError)
	}

	if len(counts) == 0 {
		PrintSuccess("No dead letters")
		return nil
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		PrintInfo("%s: %d", t, counts[event.Type(t)])
	}
	return nil
}
