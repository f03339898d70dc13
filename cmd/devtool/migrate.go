package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GielinorRush_Go/internal/database/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply embedded migrations (up) or print the schema version (status)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("subcommand required: up, status")
	}

	switch args[0] {
	case "up", "status":
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if args[0] == "up" {
		PrintHeader("Applying migrations")
		if err := migrations.Run(ctx, pool); err != nil {
			return err
		}
	}

	v, err := migrations.Version(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema version %d", v)
	return nil
}
