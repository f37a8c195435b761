package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id                 uuid.UUID
	referenceCode      ReferenceCode
	userID             *uuid.UUID
	boxTypeID          int64
	quantity           Quantity
	weightKg           *decimal.Decimal
	contact            Contact
	pickupAddress      PickupAddress
	pickupDate         time.Time
	pickupSlot         PickupSlot
	volume             decimal.Decimal
	cost               decimal.Decimal
	referralID         *uuid.UUID
	status             Status
	notificationStatus NotificationStatus
	createdAt          time.Time
}

func (b *Booking) ID() uuid.UUID                          { return b.id }
func (b *Booking) ReferenceCode() ReferenceCode           { return b.referenceCode }
func (b *Booking) UserID() *uuid.UUID                     { return b.userID }
func (b *Booking) BoxTypeID() int64                       { return b.boxTypeID }
func (b *Booking) Quantity() Quantity                     { return b.quantity }
func (b *Booking) WeightKg() *decimal.Decimal             { return b.weightKg }
func (b *Booking) Contact() Contact                       { return b.contact }
func (b *Booking) PickupAddress() PickupAddress           { return b.pickupAddress }
func (b *Booking) PickupDate() time.Time                  { return b.pickupDate }
func (b *Booking) PickupSlot() PickupSlot                 { return b.pickupSlot }
func (b *Booking) Volume() decimal.Decimal                { return b.volume }
func (b *Booking) Cost() decimal.Decimal                  { return b.cost }
func (b *Booking) ReferralID() *uuid.UUID                 { return b.referralID }
func (b *Booking) Status() Status                         { return b.status }
func (b *Booking) NotificationStatus() NotificationStatus { return b.notificationStatus }
func (b *Booking) CreatedAt() time.Time                   { return b.createdAt }

// Recode replaces the reference code after a unique-index collision on insert.
func (b *Booking) Recode(code ReferenceCode) {
	b.referenceCode = code
}

// AttachReferral records the referral that brought the customer in.
func (b *Booking) AttachReferral(id uuid.UUID) {
	b.referralID = &id
}
