package components

import (
	"cargo-consolidation/internal/handler"
	"cargo-consolidation/internal/handler/api"
	"cargo-consolidation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBoxHandler,
		api.NewBookingHandler,
		api.NewContainerHandler,
		api.NewQuoteHandler,
		api.NewReferralHandler,
		api.NewAgentHandler,
		api.NewTrackingHandler,
		api.NewNotificationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
