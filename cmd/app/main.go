package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GielinorRush_Go/internal/bootstrap"
	"github.com/osse101/GielinorRush_Go/internal/config"
	"github.com/osse101/GielinorRush_Go/internal/database/postgres"
	"github.com/osse101/GielinorRush_Go/internal/server"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, stdout)
	if err != nil {
		return err
	}
	defer logFile.Close()

	pool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		pool.Close()
		return err
	}
	notifier, err := bootstrap.RegisterEventHandlers(bus, cfg)
	if err != nil {
		pool.Close()
		return err
	}

	svc := treasure.NewService(postgres.NewTreasureRepository(pool), publisher, treasure.Options{
		GraphCacheSize: cfg.GraphCacheSize,
		GraphCacheTTL:  cfg.GraphCacheTTL,
	})

	workers, sched := bootstrap.StartWorkers(cfg, svc)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Detector: server.DetectorConfig{
			Window:       cfg.RateLimitWindow,
			RequestLimit: cfg.RateLimitRequests,
		},
	}, pool, svc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			Scheduler:          sched,
			Workers:            workers,
			ResilientPublisher: publisher,
			Notifier:           notifier,
			DBPool:             pool,
		})
		return nil
	})

	return g.Wait()
}
