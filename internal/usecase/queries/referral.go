package queries

import (
	"context"

	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReferralNotFound = errs.New("referral not found")

type ReferralReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReferralView, error)
	FindByCode(ctx context.Context, code string) (*ReferralView, error)
	List(ctx context.Context, rewardStatus string, after *Keyset, limit int32) ([]*ReferralView, error)
}

type ReferralQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReferralView, error)
	GetByCode(ctx context.Context, code string) (*ReferralView, error)
	List(ctx context.Context, rewardStatus string, cursor *Cursor, limit int) ([]*ReferralView, *Cursor, error)
}

type referralQueriesImpl struct {
	store   ReferralReadStore
	siteURL string
}

func NewReferralQueries(store ReferralReadStore, siteURL string) ReferralQueries {
	return &referralQueriesImpl{store: store, siteURL: siteURL}
}

func (q *referralQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReferralView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReferralNotFound)
		}
		return nil, err
	}
	return q.decorate(v), nil
}

func (q *referralQueriesImpl) GetByCode(ctx context.Context, code string) (*ReferralView, error) {
	v, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReferralNotFound)
		}
		return nil, err
	}
	return q.decorate(v), nil
}

func (q *referralQueriesImpl) List(ctx context.Context, rewardStatus string, cursor *Cursor, limit int) ([]*ReferralView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := DecodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, rewardStatus, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := Page(rows, limit, func(r *ReferralView) string {
		return EncodeAfterCursor(r.CreatedAt, r.ID)
	})
	for _, r := range rows {
		q.decorate(r)
	}
	return rows, next, nil
}

// decorate fills the derived fields.
func (q *referralQueriesImpl) decorate(v *ReferralView) *ReferralView {
	v.ShareableLink = referral.ShareableLink(q.siteURL, v.Code)
	v.ConversionRate = referral.ConversionRate(v.SuccessfulReferrals, v.TotalReferrals)
	return v
}
