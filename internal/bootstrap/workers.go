package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GielinorRush_Go/internal/config"
	"github.com/osse101/GielinorRush_Go/internal/scheduler"
	"github.com/osse101/GielinorRush_Go/internal/worker"
)

// StartWorkers starts the background job pool and schedules the event expiry
// sweep. The returned scheduler is nil when the sweep is disabled.
func StartWorkers(cfg *config.Config, closer worker.EventCloser) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(context.Background(), cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	if cfg.EventSweepInterval <= 0 {
		slog.Info(LogMsgEventSweepDisabled)
		return pool, nil
	}

	sched := scheduler.New(pool)
	sched.Schedule(cfg.EventSweepInterval, worker.NewExpiryJob(closer, cfg.EventSweepTimeout))
	return pool, sched
}
