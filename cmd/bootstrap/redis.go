package bootstrap

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/infra/cache"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewProgressCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty; the progress cache is
// optional and every read falls back to Postgres.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) goredis.UniversalClient {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set; progress cache disabled")
		return nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable; progress reads will miss the cache", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

type ProgressCacheResult struct {
	fx.Out

	Cache       queries.ProgressCache
	Invalidator commands.ProgressInvalidator
}

func NewProgressCache(rdb goredis.UniversalClient, cfg config.Config) ProgressCacheResult {
	if rdb == nil {
		return ProgressCacheResult{}
	}
	c := cache.NewProgressCache(rdb, cfg.Redis.ProgressTTL)
	return ProgressCacheResult{Cache: c, Invalidator: c}
}
