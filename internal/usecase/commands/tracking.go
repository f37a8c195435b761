package commands

import (
	"context"

	"cargo-consolidation/internal/domain/tracking"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

type TrackingCommands interface {
	AddRecord(ctx context.Context, bookingID uuid.UUID, status, location string) (int64, error)
}

type trackingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTrackingUseCase(uow shared.UnitOfWork, clk clock.Clock) TrackingCommands {
	return &trackingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *trackingUseCaseImpl) AddRecord(ctx context.Context, bookingID uuid.UUID, status, location string) (int64, error) {
	rec, err := tracking.NewRecord(bookingID, status, location, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		created, err := tx.Tracking().Create(ctx, tx.DB(), rec)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
