package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/testing/leaktest"
	"github.com/osse101/GielinorRush_Go/internal/worker"
)

// MockJob signals each run
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

// rejectingPool accepts nothing and counts attempts
type rejectingPool struct {
	mu       sync.Mutex
	attempts int
}

func (p *rejectingPool) Enqueue(worker.Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts++
	return false
}

func (p *rejectingPool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts
}

func stop(t *testing.T, s *Scheduler) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 10)
	pool.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = pool.Stop(ctx)
	}()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
	stop(t, sched)

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_RunsImmediately(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 10)
	pool.Start()
	defer func() { _ = pool.Stop(context.Background()) }()

	sched := New(pool)
	defer stop(t, sched)

	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.Schedule(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("job did not run on schedule")
	}
}

func TestScheduler_FullQueueSkipsTick(t *testing.T) {
	pool := &rejectingPool{}
	sched := New(pool)
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{})})

	require.Eventually(t, func() bool { return pool.count() >= 3 }, time.Second, 5*time.Millisecond)
	stop(t, sched)
}

func TestScheduler_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		sched := New(&rejectingPool{})
		sched.Schedule(time.Millisecond, &MockJob{Done: make(chan struct{})})
		sched.Schedule(time.Hour, &MockJob{Done: make(chan struct{})})
		stop(t, sched)
		// Stop is idempotent
		stop(t, sched)
	})
}
