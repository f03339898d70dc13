package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/logger"
)

// EventCloser closes events whose end date has passed
type EventCloser interface {
	CloseExpiredEvents(ctx context.Context) (int, error)
}

// ExpiryJob sweeps for expired events
type ExpiryJob struct {
	closer  EventCloser
	timeout time.Duration
}

// NewExpiryJob creates an ExpiryJob. A sweep is abandoned after timeout.
func NewExpiryJob(closer EventCloser, timeout time.Duration) *ExpiryJob {
	if timeout <= 0 {
		timeout = DefaultSweepTimeout
	}
	return &ExpiryJob{closer: closer, timeout: timeout}
}

func (j *ExpiryJob) Name() string { return JobNameEventExpiry }

func (j *ExpiryJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	closed, err := j.closer.CloseExpiredEvents(ctx)
	if closed > 0 {
		logger.FromContext(ctx).Info(LogMsgExpiredEventsClosed, "closed", closed)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSweepFailed, err)
	}
	return nil
}
