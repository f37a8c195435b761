package components

import (
	"log/slog"

	"cargo-consolidation/internal/domain/booking"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"
	"cargo-consolidation/internal/usecase/shared"
	"cargo-consolidation/internal/worker"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *booking.Factory {
		b := cfg.Booking
		return booking.NewFactory(clk, booking.NewPickupPolicy(b.Location(), b.MinAdvanceDays, b.MaxAdvanceDays))
	},
	func(cfg config.Config) commands.AdminContacts {
		return commands.AdminContacts{Email: cfg.Notify.AdminEmail, WhatsApp: cfg.Notify.AdminWhatsApp}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, clk clock.Clock) *commands.OutboxNotifier {
				return commands.NewOutboxNotifier(cfg.Worker.MaxAttempts, clk)
			},
			fx.As(new(commands.BookingNotifier)),
		),
		commands.NewBookingUseCase,
		commands.NewBoxUseCase,
		commands.NewReferralUseCase,
		commands.NewAgentUseCase,
		commands.NewTrackingUseCase,
		commands.NewTemplateUseCase,
		commands.NewNotificationDispatcher,
		commands.NewContainerUseCase,
		worker.TaskRunners,
		commands.NewScheduleUseCase,
		NewJobProcessor,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBoxQueries,
		queries.NewBookingQueries,
		queries.NewTrackingQueries,
		queries.NewCapacityQueries,
		queries.NewQuoteQueries,
		queries.NewBatchQueries,
		func(store queries.ReferralReadStore, cfg config.Config) queries.ReferralQueries {
			return queries.NewReferralQueries(store, cfg.Server.SiteURL)
		},
		queries.NewAgentQueries,
		queries.NewNotificationQueries,
		queries.NewScheduleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewJobProcessor(
	uow shared.UnitOfWork,
	dispatcher commands.NotificationDispatcher,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.JobProcessor {
	confirmation := commands.NewBookingConfirmationHandler(uow, dispatcher, logger)
	return commands.NewJobProcessor(uow, cfg.Worker.RetryDelay, clk, logger, confirmation)
}
