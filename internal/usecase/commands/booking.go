package commands

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"

	"cargo-consolidation/internal/domain/booking"
	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/domain/referral"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxReferenceCodeLookups = 10
	maxBookingInserts       = 3
)

type CreateBookingResult struct {
	ID            uuid.UUID
	ReferenceCode string
	Volume        decimal.Decimal
	Cost          decimal.Decimal
	BatchID       int64
	Status        string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	notifier BookingNotifier
	progress ProgressInvalidator
	clock    clock.Clock
	random   io.Reader
	logger   *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	notifier BookingNotifier,
	progress ProgressInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		factory:  factory,
		notifier: notifier,
		progress: progress,
		clock:    clk,
		random:   rand.Reader,
		logger:   logger.With("component", "booking"),
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error) {
	bt, err := uc.uow.CommandReads().BoxTypeByID(ctx, req.BoxTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Field("box_type", ErrBoxTypeNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	pickupDate, err := req.ParsePickupDate(uc.factory.Pickup.Location)
	if err != nil {
		return nil, err
	}
	var refCode *referral.Code
	if raw := req.GetReferralCode(); raw != "" {
		c, perr := referral.ParseCode(raw)
		if perr != nil {
			return nil, perr
		}
		refCode = &c
	}

	code, err := uc.allocateReferenceCode(ctx)
	if err != nil {
		return nil, err
	}
	b, err := uc.factory.CreateBooking(booking.NewBookingInput{
		Box:           bt,
		Quantity:      req.Quantity,
		WeightKg:      req.WeightKg,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		WhatsApp:      req.WhatsApp,
		PickupAddress: req.PickupAddress,
		PickupDate:    pickupDate,
		PickupSlot:    req.PickupSlot,
		UserID:        userID,
	}, code)
	if err != nil {
		return nil, err
	}

	var batchID int64
	for attempt := 1; ; attempt++ {
		batchID, err = uc.persist(ctx, b, refCode)
		if err == nil {
			break
		}
		if attempt >= maxBookingInserts || !isReferenceCodeCollision(err) {
			return nil, err
		}
		uc.logger.WarnContext(ctx, "reference code collided on insert, regenerating",
			"reference_code", b.ReferenceCode().String(), "attempt", attempt)
		code, err = uc.allocateReferenceCode(ctx)
		if err != nil {
			return nil, err
		}
		b.Recode(code)
	}

	if uc.progress != nil {
		if err := uc.progress.Invalidate(ctx); err != nil {
			uc.logger.WarnContext(ctx, "failed to invalidate progress cache", "error", err)
		}
	}
	uc.logger.InfoContext(ctx, "booking created",
		"booking_id", b.ID(), "reference_code", b.ReferenceCode().String(), "batch_id", batchID)

	return &CreateBookingResult{
		ID:            b.ID(),
		ReferenceCode: b.ReferenceCode().String(),
		Volume:        b.Volume(),
		Cost:          b.Cost(),
		BatchID:       batchID,
		Status:        string(b.Status()),
	}, nil
}

func (uc *bookingUseCaseImpl) persist(ctx context.Context, b *booking.Booking, refCode *referral.Code) (int64, error) {
	var batchID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		var ref *referral.Referral
		if refCode != nil {
			r, err := tx.Referrals().FindByCodeForUpdate(ctx, tx.DB(), refCode.String())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Field("referral_code", ErrUnknownReferralCode)
				}
				return err
			}
			ref = r
			b.AttachReferral(ref.ID())
		}

		open, err := tx.Batches().GetOrCreateOpen(ctx, tx.DB(), capacity.Capacity, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b, open.ID()); err != nil {
			return err
		}
		if ref != nil {
			ref.TrackSuccessfulReferral(b.Cost(), now)
			if err := tx.Referrals().Save(ctx, tx.DB(), ref); err != nil {
				return err
			}
		}
		if err := uc.notifier.BookingCreated(ctx, tx, b.ID()); err != nil {
			return err
		}
		batchID = open.ID()
		return nil
	})
	return batchID, err
}

// allocateReferenceCode draws codes until one is unused. The unique index
// still has the final say at insert time.
func (uc *bookingUseCaseImpl) allocateReferenceCode(ctx context.Context) (booking.ReferenceCode, error) {
	reads := uc.uow.CommandReads()
	for i := 0; i < maxReferenceCodeLookups; i++ {
		code, err := booking.GenerateReferenceCode(uc.random)
		if err != nil {
			return booking.ReferenceCode{}, err
		}
		exists, err := reads.ReferenceCodeExists(ctx, code.String())
		if err != nil {
			return booking.ReferenceCode{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return code, nil
		}
	}
	return booking.ReferenceCode{}, booking.ErrReferenceCodeExhausted
}

func isReferenceCodeCollision(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == repository.ReferenceCodeConstraint
}
