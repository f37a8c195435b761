// Package cache holds non-authoritative read caches backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/queries"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const progressKey = "cargo:container:progress"

type progressEntry struct {
	TotalVolume decimal.Decimal `json:"total_volume"`
	GoalVolume  decimal.Decimal `json:"goal_volume"`
	Percent     decimal.Decimal `json:"percent"`
}

// ProgressCache keeps the last computed container progress for a short TTL.
// Booking creation invalidates it after commit.
type ProgressCache struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

func NewProgressCache(rdb goredis.UniversalClient, ttl time.Duration) *ProgressCache {
	return &ProgressCache{rdb: rdb, ttl: ttl}
}

func (c *ProgressCache) Get(ctx context.Context) (*queries.ProgressView, bool, error) {
	raw, err := c.rdb.Get(ctx, progressKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read progress cache")
	}
	var e progressEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode progress cache entry")
	}
	return &queries.ProgressView{TotalVolume: e.TotalVolume, GoalVolume: e.GoalVolume, Percent: e.Percent}, true, nil
}

func (c *ProgressCache) Set(ctx context.Context, v *queries.ProgressView) error {
	raw, err := json.Marshal(progressEntry{TotalVolume: v.TotalVolume, GoalVolume: v.GoalVolume, Percent: v.Percent})
	if err != nil {
		return errs.Wrap(err, "failed to encode progress cache entry")
	}
	if err := c.rdb.Set(ctx, progressKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write progress cache")
	}
	return nil
}

func (c *ProgressCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, progressKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate progress cache")
	}
	return nil
}
