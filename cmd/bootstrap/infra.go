package bootstrap

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/pkg/jwt"
	"cargo-consolidation/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewDB opens the pool and, with DB_AUTO_MIGRATE, applies pending
// migrations before anything else starts serving.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.DB.AutoMigrate {
				return nil
			}
			applied, err := db.Migrate(ctx, pool, migrations.FS)
			if err != nil {
				return err
			}
			if len(applied) > 0 {
				logger.Info("applied migrations", "versions", applied)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(jwt.Options{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
		Leeway: cfg.JWT.Leeway,
	}, clk)
}
