package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const referralViewSelect = `
SELECT id, email, code, total_referrals, successful_referrals, link_clicks, last_clicked_at,
       reward_amount, reward_status, total_reward_earned, created_at
FROM referrals`

const (
	getReferralByIDSQL   = referralViewSelect + ` WHERE id = $1`
	getReferralByCodeSQL = referralViewSelect + ` WHERE code = $1`

	listReferralsSQL = referralViewSelect + `
WHERE ($1 = '' OR reward_status = $1)
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4`
)

type ReferralReadStore struct {
	db db.DBTX
}

func NewReferralReadStore(db db.DBTX) *ReferralReadStore {
	return &ReferralReadStore{db: db}
}

func (r *ReferralReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReferralView, error) {
	v, err := scanReferral(r.db.QueryRow(ctx, getReferralByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referral by id", err)
	}
	return v, nil
}

func (r *ReferralReadStore) FindByCode(ctx context.Context, code string) (*queries.ReferralView, error) {
	v, err := scanReferral(r.db.QueryRow(ctx, getReferralByCodeSQL, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get referral by code", err)
	}
	return v, nil
}

func (r *ReferralReadStore) List(ctx context.Context, rewardStatus string, after *queries.Keyset, limit int32) ([]*queries.ReferralView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listReferralsSQL, rewardStatus, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list referrals", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReferralView, error) {
		return scanReferral(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan referrals", err)
	}
	return views, nil
}

func scanReferral(row pgx.Row) (*queries.ReferralView, error) {
	var (
		v                   queries.ReferralView
		lastClicked         pgtype.Timestamptz
		reward, totalEarned pgtype.Numeric
		err                 error
	)
	err = row.Scan(
		&v.ID, &v.Email, &v.Code, &v.TotalReferrals, &v.SuccessfulReferrals, &v.LinkClicks, &lastClicked,
		&reward, &v.RewardStatus, &totalEarned, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.LastClickedAt = pgconv.TimePtrFromPgtype(lastClicked)
	if v.RewardAmount, err = pgconv.DecimalFromNumeric(reward); err != nil {
		return nil, err
	}
	if v.TotalRewardEarned, err = pgconv.DecimalFromNumeric(totalEarned); err != nil {
		return nil, err
	}
	return &v, nil
}
