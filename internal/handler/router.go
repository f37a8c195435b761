package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/handler/api"
	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/handler/middleware"
	"cargo-consolidation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Box          *api.BoxHandler
	Booking      *api.BookingHandler
	Container    *api.ContainerHandler
	Quote        *api.QuoteHandler
	Referral     *api.ReferralHandler
	Agent        *api.AgentHandler
	Tracking     *api.TrackingHandler
	Notification *api.NotificationHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	httperr.RegisterJSONFieldNames()

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	if cfg.Tracing.Enabled {
		engine.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(logger.GetSlogLogger()))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.OptionalAuth())
	staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	staffOnly := []gin.HandlerFunc{staff}

	{
		boxes := apiGroup.Group("/boxes")
		addRoutes(boxes, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Box.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Box.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Box.Create, Mw: staffOnly},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/track/:reference_code", Handler: h.Booking.Track},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: staffOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: staffOnly},
		})

		container := apiGroup.Group("/container")
		addRoutes(container, []route{
			{Method: http.MethodGet, Path: "/progress", Handler: h.Container.Progress},
			{Method: http.MethodGet, Path: "/capacity/history", Handler: h.Container.History},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/volume-calc", Handler: h.Quote.VolumeCalc},
		})

		referrals := apiGroup.Group("/referrals")
		addRoutes(referrals, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Referral.Create},
			{Method: http.MethodPost, Path: "/:id/clicks", Handler: h.Referral.TrackClick},
			{Method: http.MethodGet, Path: "", Handler: h.Referral.List, Mw: staffOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Referral.Get, Mw: staffOnly},
			{Method: http.MethodPatch, Path: "/:id/reward", Handler: h.Referral.UpdateReward, Mw: staffOnly},
		})

		agents := apiGroup.Group("/agents")
		addRoutes(agents, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Agent.Apply},
			{Method: http.MethodGet, Path: "", Handler: h.Agent.List, Mw: staffOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Agent.Get, Mw: staffOnly},
			{Method: http.MethodPatch, Path: "/:id/review", Handler: h.Agent.Review, Mw: staffOnly},
		})

		tracking := apiGroup.Group("/tracking")
		addRoutes(tracking, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Tracking.ListByBooking},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Tracking.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Tracking.Create, Mw: staffOnly},
		})

		templates := apiGroup.Group("/notification-templates")
		templates.Use(staff)
		addRoutes(templates, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.ListTemplates},
			{Method: http.MethodPost, Path: "", Handler: h.Notification.CreateTemplate},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Notification.GetTemplate},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Notification.UpdateTemplate},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.DeleteTemplate},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/notification-logs", Handler: h.Notification.ListLogs, Mw: staffOnly},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(staff)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/check-dispatch", Handler: h.Admin.CheckDispatch},
			{Method: http.MethodPost, Path: "/check-milestones", Handler: h.Admin.CheckMilestones},
			{Method: http.MethodPost, Path: "/mark-ready-batches", Handler: h.Admin.MarkReadyBatches},
			{Method: http.MethodGet, Path: "/batches", Handler: h.Admin.ListBatches},
			{Method: http.MethodPost, Path: "/batches/:id/dispatch", Handler: h.Admin.DispatchBatch},
			{Method: http.MethodGet, Path: "/schedules", Handler: h.Admin.ListSchedules},
			{Method: http.MethodPatch, Path: "/schedules/:name", Handler: h.Admin.UpdateSchedule},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
