package repository

import (
	"context"
	"time"

	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReferralCodeConstraint is the unique index guarding referral codes.
const ReferralCodeConstraint = "referrals_code_key"

const referralColumns = `
id, email, code, referrer_id, total_referrals, successful_referrals, link_clicks, last_clicked_at,
reward_amount, reward_status, reward_updated_at, total_reward_earned, created_at`

const (
	createReferralSQL = `
INSERT INTO referrals (` + referralColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectReferralByCodeForUpdateSQL = `SELECT ` + referralColumns + ` FROM referrals WHERE code = $1 FOR UPDATE`
	selectReferralByIDForUpdateSQL   = `SELECT ` + referralColumns + ` FROM referrals WHERE id = $1 FOR UPDATE`

	updateReferralSQL = `
UPDATE referrals
SET total_referrals = $2, successful_referrals = $3, link_clicks = $4, last_clicked_at = $5,
    reward_amount = $6, reward_status = $7, reward_updated_at = $8, total_reward_earned = $9
WHERE id = $1`
)

type ReferralRepository struct{}

func NewReferralRepository() *ReferralRepository {
	return &ReferralRepository{}
}

func (r *ReferralRepository) Create(ctx context.Context, tx db.DBTX, ref *referral.Referral) error {
	s := ref.Snapshot()
	_, err := tx.Exec(ctx, createReferralSQL,
		s.ID,
		s.Email,
		s.Code,
		pgconv.UUIDPtrToPgtype(s.ReferrerID),
		s.TotalReferrals,
		s.SuccessfulReferrals,
		s.LinkClicks,
		pgconv.TimePtrToPgtype(s.LastClickedAt),
		pgconv.DecimalToNumeric(s.RewardAmount),
		string(s.RewardStatus),
		pgconv.TimeToPgtype(s.RewardUpdatedAt),
		pgconv.DecimalToNumeric(s.TotalRewardEarned),
		pgconv.TimeToPgtype(s.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create referral", err)
	}
	return nil
}

func (r *ReferralRepository) FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*referral.Referral, error) {
	ref, err := scanReferral(tx.QueryRow(ctx, selectReferralByCodeForUpdateSQL, code))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock referral by code", err)
	}
	return ref, nil
}

func (r *ReferralRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*referral.Referral, error) {
	ref, err := scanReferral(tx.QueryRow(ctx, selectReferralByIDForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock referral", err)
	}
	return ref, nil
}

func (r *ReferralRepository) Save(ctx context.Context, tx db.DBTX, ref *referral.Referral) error {
	s := ref.Snapshot()
	return execOne(ctx, tx, "referral", updateReferralSQL,
		s.ID,
		s.TotalReferrals,
		s.SuccessfulReferrals,
		s.LinkClicks,
		pgconv.TimePtrToPgtype(s.LastClickedAt),
		pgconv.DecimalToNumeric(s.RewardAmount),
		string(s.RewardStatus),
		pgconv.TimeToPgtype(s.RewardUpdatedAt),
		pgconv.DecimalToNumeric(s.TotalRewardEarned),
	)
}

func scanReferral(row pgx.Row) (*referral.Referral, error) {
	var (
		s                   referral.Snapshot
		code, status        string
		referrerID          pgtype.UUID
		lastClicked         pgtype.Timestamptz
		reward, totalEarned pgtype.Numeric
		rewardUpdatedAt     time.Time
		err                 error
	)
	err = row.Scan(
		&s.ID, &s.Email, &code, &referrerID, &s.TotalReferrals, &s.SuccessfulReferrals, &s.LinkClicks, &lastClicked,
		&reward, &status, &rewardUpdatedAt, &totalEarned, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Code = code
	s.RewardStatus = referral.RewardStatus(status)
	s.RewardUpdatedAt = rewardUpdatedAt
	s.ReferrerID = pgconv.UUIDPtrFromPgtype(referrerID)
	s.LastClickedAt = pgconv.TimePtrFromPgtype(lastClicked)
	if s.RewardAmount, err = pgconv.DecimalFromNumeric(reward); err != nil {
		return nil, err
	}
	if s.TotalRewardEarned, err = pgconv.DecimalFromNumeric(totalEarned); err != nil {
		return nil, err
	}
	return referral.Reconstruct(s), nil
}
