package request

import "github.com/google/uuid"

type CreateTrackingRecordRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Status    string    `json:"status" binding:"required"`
	Location  string    `json:"location" binding:"required"`
}
