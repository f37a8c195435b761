// Package capacity aggregates booked volume against the container capacity.
package capacity

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// Capacity is the usable volume of one container in cubic metres.
	Capacity = decimal.RequireFromString("66.16")

	tolerance = decimal.RequireFromString("0.01")
	hundred   = decimal.NewFromInt(100)
)

// Line is one booking's contribution: box volume in m³ times quantity.
type Line struct {
	BoxVolume decimal.Decimal
	Quantity  int
}

// TotalVolume is exact; no rounding is applied.
func TotalVolume(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.BoxVolume.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

type Progress struct {
	TotalVolume decimal.Decimal
	GoalVolume  decimal.Decimal
	Percent     decimal.Decimal
}

func NewProgress(total, goal decimal.Decimal) Progress {
	p := Progress{
		TotalVolume: total.Round(2),
		GoalVolume:  goal.Round(2),
		Percent:     decimal.Zero,
	}
	if !goal.IsPositive() {
		return p
	}
	pct := total.Div(goal).Mul(hundred).Round(2)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	p.Percent = pct
	return p
}

// Remaining never goes below zero.
func Remaining(total, goal decimal.Decimal) decimal.Decimal {
	r := goal.Sub(total)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r.Round(2)
}

func IsDispatchReady(total, goal decimal.Decimal) bool {
	return total.GreaterThanOrEqual(goal)
}

type Milestone struct {
	Percent   int
	Threshold decimal.Decimal
}

// Milestones returns 25/50/75% of goal, each quantized to 0.01.
func Milestones(goal decimal.Decimal) []Milestone {
	out := make([]Milestone, 0, 3)
	for _, pct := range []int{25, 50, 75} {
		t := goal.Mul(decimal.NewFromInt(int64(pct))).Div(hundred).Round(2)
		out = append(out, Milestone{Percent: pct, Threshold: t})
	}
	return out
}

// ReachedMilestones reports the milestones whose threshold t satisfies
// t-0.01 < total <= t+0.01. Nothing remembers a milestone between calls, so
// a total sitting inside a band matches on every call.
func ReachedMilestones(total, goal decimal.Decimal) []Milestone {
	var hit []Milestone
	for _, m := range Milestones(goal) {
		if total.GreaterThan(m.Threshold.Sub(tolerance)) && total.LessThanOrEqual(m.Threshold.Add(tolerance)) {
			hit = append(hit, m)
		}
	}
	return hit
}

type Snapshot struct {
	ID          int64
	TotalVolume decimal.Decimal
	GoalVolume  decimal.Decimal
	Percent     decimal.Decimal
	RecordedAt  time.Time
}

func NewSnapshot(p Progress, at time.Time) Snapshot {
	return Snapshot{
		TotalVolume: p.TotalVolume,
		GoalVolume:  p.GoalVolume,
		Percent:     p.Percent,
		RecordedAt:  at,
	}
}
