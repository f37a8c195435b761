//go:build unit || e2e

package builder

import (
	"time"

	"cargo-consolidation/internal/domain/booking"
	"cargo-consolidation/internal/domain/box"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingBuilder defaults to Monday 2025-01-06 09:00 UTC with a Wednesday pickup,
// four one-cubic-metre boxes and a cost of 1814.64.
type BookingBuilder struct {
	Now           time.Time
	Box           *box.BoxType
	Quantity      int
	WeightKg      *decimal.Decimal
	CustomerName  string
	CustomerEmail string
	WhatsApp      string
	PickupAddress string
	PickupDate    time.Time
	PickupSlot    string
	ReferenceCode string
	ReferralCode  string
	UserID        *uuid.UUID
	ReferralID    *uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Now:           time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		Box:           NewBoxBuilder().AsCubicMetre().MustBuildDomain(),
		Quantity:      4,
		CustomerName:  "Ada Mensah",
		CustomerEmail: "Ada@Example.com",
		WhatsApp:      "+233201234567",
		PickupAddress: "12 Ring Road, Accra",
		PickupDate:    time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		PickupSlot:    "morning",
		ReferenceCode: "ABCDE12345",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Factory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(b.Now), booking.NewPickupPolicy(time.UTC, 1, 30))
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	code, err := booking.ParseReferenceCode(b.ReferenceCode)
	if err != nil {
		return nil, err
	}
	return b.Factory().CreateBooking(booking.NewBookingInput{
		Box:           b.Box,
		Quantity:      b.Quantity,
		WeightKg:      b.WeightKg,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		WhatsApp:      b.WhatsApp,
		PickupAddress: b.PickupAddress,
		PickupDate:    b.PickupDate,
		PickupSlot:    b.PickupSlot,
		UserID:        b.UserID,
		ReferralID:    b.ReferralID,
	}, code)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var boxID int64 = 1
	if b.Box != nil {
		boxID = b.Box.ID()
	}
	return reqdto.CreateBookingRequest{
		BoxTypeID:     boxID,
		Quantity:      b.Quantity,
		WeightKg:      b.WeightKg,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		WhatsApp:      b.WhatsApp,
		PickupAddress: b.PickupAddress,
		PickupDate:    b.PickupDate.Format(time.DateOnly),
		PickupSlot:    b.PickupSlot,
		ReferralCode:  b.ReferralCode,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bk := b.MustBuildDomain()
	return &queries.BookingView{
		ID:                 bk.ID(),
		ReferenceCode:      bk.ReferenceCode().String(),
		UserID:             bk.UserID(),
		BoxTypeID:          bk.BoxTypeID(),
		BoxTypeName:        b.Box.Name(),
		Quantity:           bk.Quantity().Value(),
		WeightKg:           bk.WeightKg(),
		CustomerName:       bk.Contact().Name(),
		CustomerEmail:      bk.Contact().Email(),
		CustomerWhatsApp:   bk.Contact().WhatsApp(),
		PickupAddress:      bk.PickupAddress().String(),
		PickupDate:         bk.PickupDate(),
		PickupSlot:         bk.PickupSlot().String(),
		Volume:             bk.Volume(),
		Cost:               bk.Cost(),
		Status:             string(bk.Status()),
		NotificationStatus: string(bk.NotificationStatus()),
		CreatedAt:          bk.CreatedAt(),
	}
}
