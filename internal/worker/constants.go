package worker

import "time"

// Job names
const (
	JobNameEventExpiry = "event_expiry"
)

// DefaultSweepTimeout bounds one expiry sweep
const DefaultSweepTimeout = 30 * time.Second

// Log messages
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgWorkerStopTimeout   = "Worker pool stop timed out, cancelling running jobs"
	LogMsgExpiredEventsClosed = "Closed expired treasure events"
)

// Error messages
const (
	ErrMsgSweepFailed = "expiry sweep failed"
)
