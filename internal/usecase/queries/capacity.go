package queries

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/domain/capacity"

	"github.com/shopspring/decimal"
)

type CapacityReadStore interface {
	TotalBookedVolume(ctx context.Context) (decimal.Decimal, error)
	History(ctx context.Context, limit int32) ([]*CapacitySnapshotView, error)
}

// ProgressCache is a read-through cache. It is never authoritative; a miss or
// an error falls back to the aggregate query.
type ProgressCache interface {
	Get(ctx context.Context) (*ProgressView, bool, error)
	Set(ctx context.Context, v *ProgressView) error
	Invalidate(ctx context.Context) error
}

type CapacityQueries interface {
	Progress(ctx context.Context) (*ProgressView, error)
	History(ctx context.Context, limit int) ([]*CapacitySnapshotView, error)
}

type capacityQueriesImpl struct {
	store  CapacityReadStore
	cache  ProgressCache
	logger *slog.Logger
}

func NewCapacityQueries(store CapacityReadStore, cache ProgressCache, logger *slog.Logger) CapacityQueries {
	return &capacityQueriesImpl{store: store, cache: cache, logger: logger}
}

func (q *capacityQueriesImpl) Progress(ctx context.Context) (*ProgressView, error) {
	if q.cache != nil {
		v, ok, err := q.cache.Get(ctx)
		if err != nil {
			q.logger.WarnContext(ctx, "progress cache read failed", "error", err)
		} else if ok {
			return v, nil
		}
	}

	total, err := q.store.TotalBookedVolume(ctx)
	if err != nil {
		return nil, err
	}
	p := capacity.NewProgress(total, capacity.Capacity)
	v := &ProgressView{TotalVolume: p.TotalVolume, GoalVolume: p.GoalVolume, Percent: p.Percent}

	if q.cache != nil {
		if err := q.cache.Set(ctx, v); err != nil {
			q.logger.WarnContext(ctx, "progress cache write failed", "error", err)
		}
	}
	return v, nil
}

func (q *capacityQueriesImpl) History(ctx context.Context, limit int) ([]*CapacitySnapshotView, error) {
	return q.store.History(ctx, int32(ValidateLimit(limit)))
}
