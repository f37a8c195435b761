package batch

import (
	"errors"
	"fmt"
	"time"

	"cargo-consolidation/internal/domain/capacity"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid batch status transition")
	ErrInvalidTarget     = errors.New("target volume must be positive")
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusReady      Status = "ready"
	StatusDispatched Status = "dispatched"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusReady, StatusDispatched:
		return true
	}
	return false
}

// ContainerBatch groups bookings that ship in one container. Its current
// volume is never stored; callers pass the aggregate they just computed.
type ContainerBatch struct {
	id           int64
	targetVolume decimal.Decimal
	status       Status
	createdAt    time.Time
	readyAt      *time.Time
	dispatchedAt *time.Time
}

func NewContainerBatch(target decimal.Decimal, now time.Time) (*ContainerBatch, error) {
	if target.IsZero() {
		target = capacity.Capacity
	}
	if !target.IsPositive() {
		return nil, ErrInvalidTarget
	}
	return &ContainerBatch{
		targetVolume: target,
		status:       StatusOpen,
		createdAt:    now,
	}, nil
}

func ReconstructContainerBatch(id int64, target decimal.Decimal, status Status, createdAt time.Time, readyAt, dispatchedAt *time.Time) *ContainerBatch {
	return &ContainerBatch{
		id:           id,
		targetVolume: target,
		status:       status,
		createdAt:    createdAt,
		readyAt:      readyAt,
		dispatchedAt: dispatchedAt,
	}
}

func (b *ContainerBatch) ID() int64                     { return b.id }
func (b *ContainerBatch) TargetVolume() decimal.Decimal { return b.targetVolume }
func (b *ContainerBatch) Status() Status                { return b.status }
func (b *ContainerBatch) CreatedAt() time.Time          { return b.createdAt }
func (b *ContainerBatch) ReadyAt() *time.Time           { return b.readyAt }
func (b *ContainerBatch) DispatchedAt() *time.Time      { return b.dispatchedAt }

// MarkReady moves an open batch to ready when current reaches the target.
// It reports false without error when the batch is still short.
func (b *ContainerBatch) MarkReady(current decimal.Decimal, now time.Time) (bool, error) {
	if b.status != StatusOpen {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, StatusReady)
	}
	if current.LessThan(b.targetVolume) {
		return false, nil
	}
	b.status = StatusReady
	b.readyAt = &now
	return true, nil
}

func (b *ContainerBatch) Dispatch(now time.Time) error {
	if b.status != StatusReady {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, StatusDispatched)
	}
	b.status = StatusDispatched
	b.dispatchedAt = &now
	return nil
}

// ReadinessLine is the one-line report emitted by mark-ready runs.
func ReadinessLine(id int64, current, target decimal.Decimal, ready bool) string {
	if ready {
		return fmt.Sprintf("Batch #%d marked ready (%s / %s m³)", id, current.StringFixed(2), target.StringFixed(2))
	}
	return fmt.Sprintf("Batch #%d not ready: %s / %s m³.", id, current.StringFixed(2), target.StringFixed(2))
}
