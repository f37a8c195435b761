package booking

import "errors"

var (
	ErrInvalidQuantity        = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge       = errors.New("quantity exceeds maximum per booking")
	ErrInvalidReferenceCode   = errors.New("reference code must be 8-12 characters A-Z or 0-9")
	ErrInvalidPickupSlot      = errors.New("pickup slot must be one of morning, afternoon, evening")
	ErrPickupTooSoon          = errors.New("pickup date is earlier than the minimum advance notice")
	ErrPickupTooFar           = errors.New("pickup date is beyond the booking window")
	ErrPickupDayNotAllowed    = errors.New("pickups are not available on this day")
	ErrEmptyPickupAddress     = errors.New("pickup address cannot be empty")
	ErrPickupAddressTooLong   = errors.New("pickup address exceeds maximum length")
	ErrEmptyCustomerName      = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong    = errors.New("customer name exceeds maximum length")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrInvalidWhatsApp        = errors.New("whatsapp number must be in international format, e.g. +233201234567")
	ErrInvalidWeight          = errors.New("weight must be between 0.01 and 9999.99 kg")
	ErrMissingBoxType         = errors.New("box type is required")
	ErrReferenceCodeExhausted = errors.New("could not allocate a unique reference code")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)
