package notification

import "time"

// Job kinds carried by the outbox.
const (
	KindBookingConfirmation = "booking_confirmation"
)

type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// RetryPolicy is a fixed-delay retry schedule. Attempts are counted from 1.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

func (p RetryPolicy) IsFinal(attempt int) bool {
	return attempt >= p.MaxAttempts
}

func (p RetryPolicy) NextRun(now time.Time) time.Time {
	return now.Add(p.Delay)
}
