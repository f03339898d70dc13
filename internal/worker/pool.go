package worker

import (
	"context"
	"sync"

	"github.com/osse101/GielinorRush_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewPool creates a new worker pool. Jobs run with ctx, which is cancelled
// when the pool stops.
func NewPool(ctx context.Context, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	jobCtx, cancel := context.WithCancel(ctx)
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      jobCtx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if p.ctx.Err() != nil {
			continue
		}
		if err := job.Process(p.ctx); err != nil {
			logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
		}
	}
}

// Enqueue adds a job without blocking. It returns false when the queue is
// full or the pool has stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for queued and running jobs. When ctx
// expires first, running jobs are cancelled and ctx.Err is returned.
func (p *Pool) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.jobQueue)
		p.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		logger.FromContext(ctx).Warn(LogMsgWorkerStopTimeout)
		return ctx.Err()
	}
}
