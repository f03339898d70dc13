package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GielinorRush_Go/internal/config"
	"github.com/osse101/GielinorRush_Go/internal/database"
)

// openPool connects with the application's database settings
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	PrintInfo("Connecting to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	return database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: 2})
}

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	attempts := fs.Int("attempts", 30, "Connection attempts")
	interval := fs.Duration("interval", 2*time.Second, "Delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")
	return retry(ctx, *attempts, *interval, func() error {
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		pool.Close()
		PrintSuccess("Database is ready")
		return nil
	})
}

// retry calls fn until it succeeds, attempts run out or ctx ends
func retry(ctx context.Context, attempts int, interval time.Duration, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		PrintWarning("Not ready (%d/%d): %v", i+1, attempts, err)
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("not ready after %d attempts: %w", attempts, err)
}
