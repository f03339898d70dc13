package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GielinorRush_Go/internal/config"
	"github.com/osse101/GielinorRush_Go/internal/database"
	"github.com/osse101/GielinorRush_Go/internal/database/migrations"
)

// ConnectDatabase opens the pool and brings the schema up to date.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := migrations.Run(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigration, err)
	}

	if v, err := migrations.Version(ctx, pool); err == nil {
		slog.Info(LogMsgSchemaVersion, "version", v)
	}
	return pool, nil
}
