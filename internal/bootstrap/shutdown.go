package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GielinorRush_Go/internal/database"
	"github.com/osse101/GielinorRush_Go/internal/discord"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/scheduler"
	"github.com/osse101/GielinorRush_Go/internal/worker"
)

// Stopper is a server that can be stopped gracefully
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             Stopper
	Scheduler          *scheduler.Scheduler
	Workers            *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Notifier           *discord.Notifier
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server, so no new transitions start
//  2. scheduler, then the worker pool running its jobs
//  3. event publisher, flushing retries into the bus
//  4. Discord notifier, sending what the flush queued
//  5. database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		if err := c.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerShutdownFailed, "error", err)
		}
	}

	if c.Workers != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		if err := c.Workers.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Notifier != nil {
		slog.Info(LogMsgShuttingDownNotifier)
		if err := c.Notifier.Shutdown(ctx); err != nil {
			slog.Error(LogMsgNotifierShutdownFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
