package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Job queue full, skipping scheduled run"
)
