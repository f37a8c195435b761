package response

import (
	"time"

	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Channel     string    `json:"channel"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTemplateView(v *queries.TemplateView) (*TemplateResponse, error) {
	return mapInto[TemplateResponse](v)
}

func FromTemplateList(items []*queries.TemplateView) ([]*TemplateResponse, error) {
	return mapList[TemplateResponse](items)
}

type NotificationLogResponse struct {
	ID           int64      `json:"id"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	Channel      string     `json:"channel"`
	Recipient    string     `json:"recipient"`
	Template     string     `json:"template"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromNotificationLogList(items []*queries.NotificationLogView) ([]*NotificationLogResponse, error) {
	return mapList[NotificationLogResponse](items)
}

type ScheduleResponse struct {
	Name       string     `json:"name"`
	Schedule   string     `json:"schedule"`
	Enabled    bool       `json:"enabled"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	NextRunAt  time.Time  `json:"next_run_at"`
	LastStatus string     `json:"last_status,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

func FromScheduleList(items []*queries.ScheduleView) ([]*ScheduleResponse, error) {
	return mapList[ScheduleResponse](items)
}
