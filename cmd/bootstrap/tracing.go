package bootstrap

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(registerTracing),
)

func registerTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Init(context.Background(), logger, cfg.Tracing)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}
