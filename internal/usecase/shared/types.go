package shared

import (
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingSnapshot carries what the confirmation job renders into messages.
type BookingSnapshot struct {
	ID                 uuid.UUID
	ReferenceCode      string
	BoxTypeName        string
	Quantity           int
	CustomerName       string
	CustomerEmail      string
	CustomerWhatsApp   string
	PickupAddress      string
	PickupDate         time.Time
	PickupSlot         string
	Volume             decimal.Decimal
	Cost               decimal.Decimal
	Status             string
	NotificationStatus string
}

// ErrJobAbandoned is recorded on jobs whose worker stopped during the final
// attempt.
var ErrJobAbandoned = errs.New("worker stopped during the final attempt")

type NotificationJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	Payload     []byte
	Attempts    int
	MaxAttempts int
	RunAt       time.Time
}
