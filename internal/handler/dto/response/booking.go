package response

import (
	"time"

	"cargo-consolidation/internal/pkg/ptr"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Volume        string    `json:"volume"`
	Cost          string    `json:"cost"`
	BatchID       int64     `json:"batch_id"`
	Status        string    `json:"status"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) (*CreateBookingResponse, error) {
	return mapInto[CreateBookingResponse](r)
}

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ReferenceCode      string     `json:"reference_code"`
	UserID             *uuid.UUID `json:"user_id,omitempty"`
	BoxTypeID          int64      `json:"box_type_id"`
	BoxTypeName        string     `json:"box_type"`
	Quantity           int        `json:"quantity"`
	WeightKg           *string    `json:"weight_kg,omitempty"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	CustomerWhatsApp   string     `json:"customer_whatsapp,omitempty"`
	PickupAddress      string     `json:"pickup_address"`
	PickupDate         string     `json:"pickup_date"`
	PickupSlot         string     `json:"pickup_slot"`
	Volume             string     `json:"volume"`
	Cost               string     `json:"cost"`
	ReferralCode       *string    `json:"referral_code,omitempty"`
	BatchID            *int64     `json:"batch_id,omitempty"`
	Status             string     `json:"status"`
	NotificationStatus string     `json:"notification_status"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res, err := mapInto[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	if v.WeightKg != nil {
		res.WeightKg = ptr.To(DecimalString(*v.WeightKg))
	}
	return res, nil
}

func FromBookingList(items []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, len(items))
	for i, v := range items {
		res, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

type TrackingResponse struct {
	ID        int64     `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

func FromTrackingView(v *queries.TrackingView) (*TrackingResponse, error) {
	return mapInto[TrackingResponse](v)
}

func FromTrackingList(items []*queries.TrackingView) ([]*TrackingResponse, error) {
	return mapList[TrackingResponse](items)
}

type BookingTrackResponse struct {
	ReferenceCode string              `json:"reference_code"`
	BoxTypeName   string              `json:"box_type"`
	Quantity      int                 `json:"quantity"`
	PickupDate    string              `json:"pickup_date"`
	PickupSlot    string              `json:"pickup_slot"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	Tracking      []*TrackingResponse `json:"tracking"`
}

func FromBookingTrackView(v *queries.BookingTrackView) (*BookingTrackResponse, error) {
	res, err := mapInto[BookingTrackResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Tracking, err = FromTrackingList(v.Tracking); err != nil {
		return nil, err
	}
	return res, nil
}
