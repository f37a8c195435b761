package booking

import (
	"time"

	"cargo-consolidation/internal/domain/box"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct {
	Clock  clock.Clock
	Pickup PickupPolicy
}

func NewFactory(clock clock.Clock, pickup PickupPolicy) *Factory {
	return &Factory{
		Clock:  clock,
		Pickup: pickup,
	}
}

type NewBookingInput struct {
	Box           *box.BoxType
	Quantity      int
	WeightKg      *decimal.Decimal
	CustomerName  string
	CustomerEmail string
	WhatsApp      string
	PickupAddress string
	PickupDate    time.Time
	PickupSlot    string
	UserID        *uuid.UUID
	ReferralID    *uuid.UUID
}

// CreateBooking validates in request field order so the first reported field matches the form.
func (f *Factory) CreateBooking(in NewBookingInput, code ReferenceCode) (*Booking, error) {
	if in.Box == nil {
		return nil, errs.Field("box_type_id", ErrMissingBoxType)
	}
	qty, err := NewQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	weight, err := ValidateWeight(in.WeightKg)
	if err != nil {
		return nil, err
	}
	contact, err := NewContact(in.CustomerName, in.CustomerEmail, in.WhatsApp)
	if err != nil {
		return nil, err
	}
	address, err := NewPickupAddress(in.PickupAddress)
	if err != nil {
		return nil, err
	}
	now := f.Clock.Now()
	if err := f.Pickup.Validate(in.PickupDate, now); err != nil {
		return nil, err
	}
	slot, err := ParsePickupSlot(in.PickupSlot)
	if err != nil {
		return nil, err
	}
	if code.IsZero() {
		return nil, ErrInvalidReferenceCode
	}

	return &Booking{
		id:                 uuid.New(),
		referenceCode:      code,
		userID:             in.UserID,
		boxTypeID:          in.Box.ID(),
		quantity:           qty,
		weightKg:           weight,
		contact:            contact,
		pickupAddress:      address,
		pickupDate:         civilDate(in.PickupDate),
		pickupSlot:         slot,
		volume:             LineVolume(in.Box.Volume(), qty),
		cost:               CalculateCost(in.Box.Volume(), qty),
		referralID:         in.ReferralID,
		status:             StatusPending,
		notificationStatus: NotificationPending,
		createdAt:          now,
	}, nil
}
