package request

import (
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidPickupDate = errs.New("pickup date must be formatted YYYY-MM-DD")

type CreateBookingRequest struct {
	BoxTypeID     int64            `json:"box_type_id" binding:"required"`
	Quantity      int              `json:"quantity"`
	WeightKg      *decimal.Decimal `json:"weight_kg,omitempty"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	WhatsApp      string           `json:"customer_whatsapp,omitempty"`
	PickupAddress string           `json:"pickup_address"`
	PickupDate    string           `json:"pickup_date" binding:"required"`
	PickupSlot    string           `json:"pickup_slot"`
	ReferralCode  string           `json:"referral_code,omitempty"`
}

// ParsePickupDate reads the civil date in loc.
func (r CreateBookingRequest) ParsePickupDate(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(r.PickupDate), loc)
	if err != nil {
		return time.Time{}, errs.Field("pickup_date", ErrInvalidPickupDate)
	}
	return d, nil
}

func (r CreateBookingRequest) GetReferralCode() string {
	return strings.ToUpper(strings.TrimSpace(r.ReferralCode))
}
