package tracking

import (
	"errors"
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxStatusLength   = 50
	MaxLocationLength = 100
)

var (
	ErrEmptyStatus      = errors.New("status cannot be empty")
	ErrStatusTooLong    = errors.New("status exceeds maximum length")
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrLocationTooLong  = errors.New("location exceeds maximum length")
	ErrMissingBookingID = errors.New("booking id is required")
)

// Record is one status update in a booking's shipment history, e.g. "In Transit" at "Tema Port".
type Record struct {
	ID        int64
	BookingID uuid.UUID
	Status    string
	Location  string
	Timestamp time.Time
}

func NewRecord(bookingID uuid.UUID, status, location string, now time.Time) (*Record, error) {
	if bookingID == uuid.Nil {
		return nil, errs.Field("booking_id", ErrMissingBookingID)
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, errs.Field("status", ErrEmptyStatus)
	}
	if len(status) > MaxStatusLength {
		return nil, errs.Field("status", ErrStatusTooLong)
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errs.Field("location", ErrEmptyLocation)
	}
	if len(location) > MaxLocationLength {
		return nil, errs.Field("location", ErrLocationTooLong)
	}
	return &Record{
		BookingID: bookingID,
		Status:    status,
		Location:  location,
		Timestamp: now,
	}, nil
}
