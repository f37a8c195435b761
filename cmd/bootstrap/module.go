package bootstrap

import (
	"cargo-consolidation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything except HTTP: the CLI and the standalone worker use it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
	components.WorkerModule,
)
