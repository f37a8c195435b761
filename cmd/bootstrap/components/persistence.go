package components

import (
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/readstore"
	"cargo-consolidation/internal/infra/uow"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Box
		fx.Annotate(
			readstore.NewBoxReadStore,
			fx.As(new(queries.BoxReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Tracking
		fx.Annotate(
			readstore.NewTrackingReadStore,
			fx.As(new(queries.TrackingReadStore)),
		),
		// Capacity
		fx.Annotate(
			readstore.NewCapacityReadStore,
			fx.As(new(queries.CapacityReadStore)),
		),
		// Batch
		fx.Annotate(
			readstore.NewBatchReadStore,
			fx.As(new(queries.BatchReadStore)),
		),
		// Referral
		fx.Annotate(
			readstore.NewReferralReadStore,
			fx.As(new(queries.ReferralReadStore)),
		),
		// Agent
		fx.Annotate(
			readstore.NewAgentReadStore,
			fx.As(new(queries.AgentReadStore)),
		),
		// Notification
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationLogReadStore,
			fx.As(new(queries.NotificationLogReadStore)),
		),
		// Schedule
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
