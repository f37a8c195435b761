package commands

import (
	"context"
	"crypto/rand"
	"io"

	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxReferralCodeAttempts = 5

type CreateReferralRequest struct {
	Email      string
	ReferrerID *uuid.UUID
}

type CreateReferralResult struct {
	ID   uuid.UUID
	Code string
}

type ReferralCommands interface {
	CreateReferral(ctx context.Context, req CreateReferralRequest) (*CreateReferralResult, error)
	TrackClick(ctx context.Context, code string) error
	ChangeRewardStatus(ctx context.Context, id uuid.UUID, status string) error
}

type referralUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	random io.Reader
}

func NewReferralUseCase(uow shared.UnitOfWork, clk clock.Clock) ReferralCommands {
	return &referralUseCaseImpl{uow: uow, clock: clk, random: rand.Reader}
}

func (uc *referralUseCaseImpl) CreateReferral(ctx context.Context, req CreateReferralRequest) (*CreateReferralResult, error) {
	for attempt := 0; attempt < maxReferralCodeAttempts; attempt++ {
		code, err := referral.GenerateCode(uc.random)
		if err != nil {
			return nil, err
		}
		ref, err := referral.NewReferral(req.Email, code, req.ReferrerID, uc.clock.Now())
		if err != nil {
			return nil, err
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Referrals().Create(ctx, tx.DB(), ref)
		})
		if err == nil {
			return &CreateReferralResult{ID: ref.ID(), Code: ref.Code().String()}, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) || infra.ConstraintOf(err) != repository.ReferralCodeConstraint {
			return nil, err
		}
	}
	return nil, ErrReferralCodeExhausted
}

func (uc *referralUseCaseImpl) TrackClick(ctx context.Context, code string) error {
	parsed, err := referral.ParseCode(code)
	if err != nil {
		return ErrReferralNotFound
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref, err := tx.Referrals().FindByCodeForUpdate(ctx, tx.DB(), parsed.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReferralNotFound)
			}
			return err
		}
		ref.TrackClick(uc.clock.Now())
		return tx.Referrals().Save(ctx, tx.DB(), ref)
	})
}

func (uc *referralUseCaseImpl) ChangeRewardStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := referral.ParseRewardStatus(status)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref, err := tx.Referrals().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReferralNotFound)
			}
			return err
		}
		if err := ref.ChangeRewardStatus(next, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return tx.Referrals().Save(ctx, tx.DB(), ref)
	})
}
