package notification

import (
	"time"

	"github.com/google/uuid"
)

type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailed  LogStatus = "failed"
)

// LogEntry records one delivery attempt. Entries are append-only.
type LogEntry struct {
	ID           int64
	BookingID    *uuid.UUID
	Channel      Channel
	Recipient    string
	Template     string
	Payload      map[string]string
	Status       LogStatus
	ErrorMessage string
	CreatedAt    time.Time
}

func NewLogEntry(msg Message, template string, vars map[string]string, bookingID *uuid.UUID, sendErr error, now time.Time) LogEntry {
	e := LogEntry{
		BookingID: bookingID,
		Channel:   msg.Channel,
		Recipient: msg.Recipient,
		Template:  template,
		Payload:   vars,
		Status:    LogSuccess,
		CreatedAt: now,
	}
	if sendErr != nil {
		e.Status = LogFailed
		e.ErrorMessage = sendErr.Error()
	}
	return e
}
