package booking

import (
	"time"

	"cargo-consolidation/internal/pkg/errs"
)

var DefaultPickupDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

// PickupPolicy bounds the pickup date to a window of whole days after today in Location.
type PickupPolicy struct {
	Location       *time.Location
	MinAdvanceDays int
	MaxAdvanceDays int
	AllowedDays    []time.Weekday
}

func NewPickupPolicy(loc *time.Location, minDays, maxDays int) PickupPolicy {
	if loc == nil {
		loc = time.UTC
	}
	return PickupPolicy{
		Location:       loc,
		MinAdvanceDays: minDays,
		MaxAdvanceDays: maxDays,
		AllowedDays:    DefaultPickupDays,
	}
}

// Validate treats pickupDate as a calendar date; its clock and zone are ignored.
func (p PickupPolicy) Validate(pickupDate, now time.Time) error {
	days := p.DaysAhead(pickupDate, now)
	if days < p.MinAdvanceDays {
		return errs.Field("pickup_date", ErrPickupTooSoon)
	}
	if days > p.MaxAdvanceDays {
		return errs.Field("pickup_date", ErrPickupTooFar)
	}
	if !p.dayAllowed(civilDate(pickupDate).Weekday()) {
		return errs.Field("pickup_date", ErrPickupDayNotAllowed)
	}
	return nil
}

func (p PickupPolicy) DaysAhead(pickupDate, now time.Time) int {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	today := civilDate(now.In(loc))
	return int(civilDate(pickupDate).Sub(today).Hours() / 24)
}

func (p PickupPolicy) dayAllowed(d time.Weekday) bool {
	if len(p.AllowedDays) == 0 {
		return true
	}
	for _, a := range p.AllowedDays {
		if a == d {
			return true
		}
	}
	return false
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
