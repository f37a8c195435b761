package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BoxTypeView struct {
	ID          int64
	Name        string
	LengthCM    int
	WidthCM     int
	HeightCM    int
	Volume      decimal.Decimal
	PricePerKg  decimal.Decimal
	PricePerBox decimal.Decimal
}

type BookingView struct {
	ID                 uuid.UUID
	ReferenceCode      string
	UserID             *uuid.UUID
	BoxTypeID          int64
	BoxTypeName        string
	Quantity           int
	WeightKg           *decimal.Decimal
	CustomerName       string
	CustomerEmail      string
	CustomerWhatsApp   string
	PickupAddress      string
	PickupDate         time.Time
	PickupSlot         string
	Volume             decimal.Decimal
	Cost               decimal.Decimal
	ReferralCode       *string
	BatchID            *int64
	Status             string
	NotificationStatus string
	CreatedAt          time.Time
}

// BookingTrackView is the public lookup by reference code; it omits contact details.
type BookingTrackView struct {
	ReferenceCode string
	BoxTypeName   string
	Quantity      int
	PickupDate    time.Time
	PickupSlot    string
	Status        string
	CreatedAt     time.Time
	Tracking      []*TrackingView
}

type BookingFilter struct {
	Status  string
	BatchID *int64
	Email   string
}

type ProgressView struct {
	TotalVolume decimal.Decimal
	GoalVolume  decimal.Decimal
	Percent     decimal.Decimal
}

type CapacitySnapshotView struct {
	ID          int64
	TotalVolume decimal.Decimal
	GoalVolume  decimal.Decimal
	Percent     decimal.Decimal
	RecordedAt  time.Time
}

type BatchView struct {
	ID            int64
	TargetVolume  decimal.Decimal
	CurrentVolume decimal.Decimal
	BookingCount  int
	Status        string
	CreatedAt     time.Time
	ReadyAt       *time.Time
	DispatchedAt  *time.Time
}

type QuoteItem struct {
	BoxTypeID int64
	Quantity  int
}

type QuoteView struct {
	TotalVolume     decimal.Decimal
	TotalBoxes      int
	Subtotal        decimal.Decimal
	Tier            string
	DiscountPercent decimal.Decimal
	Discount        decimal.Decimal
	TotalCost       decimal.Decimal
}

type ReferralView struct {
	ID                  uuid.UUID
	Email               string
	Code                string
	TotalReferrals      int
	SuccessfulReferrals int
	LinkClicks          int
	LastClickedAt       *time.Time
	RewardAmount        decimal.Decimal
	RewardStatus        string
	TotalRewardEarned   decimal.Decimal
	ShareableLink       string
	ConversionRate      decimal.Decimal
	CreatedAt           time.Time
}

type AgentApplicationView struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Company     string
	Experience  string
	Status      string
	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ReviewedBy  *uuid.UUID
	AdminNotes  string
}

type TrackingView struct {
	ID        int64
	BookingID uuid.UUID
	Status    string
	Location  string
	Timestamp time.Time
}

type TemplateView struct {
	ID          int64
	Name        string
	Description string
	Subject     string
	Body        string
	Channel     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NotificationLogView struct {
	ID           int64
	BookingID    *uuid.UUID
	Channel      string
	Recipient    string
	Template     string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

type NotificationLogFilter struct {
	BookingID *uuid.UUID
	Channel   string
	Status    string
}

type ScheduleView struct {
	Name       string
	Schedule   string
	Enabled    bool
	LastRunAt  *time.Time
	NextRunAt  time.Time
	LastStatus string
	LastError  string
}
