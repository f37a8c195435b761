//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/handler/api"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"
	"cargo-consolidation/tests/common/httptest"
	commandsmock "cargo-consolidation/tests/mock/commands"
	queriesmock "cargo-consolidation/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockContainer *commandsmock.MockContainerCommands
	mockSchedules *commandsmock.MockScheduleCommands
	mockBatches   *queriesmock.MockBatchQueries
	mockTasks     *queriesmock.MockScheduleQueries
	mockCapacity  *queriesmock.MockCapacityQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockContainer = commandsmock.NewMockContainerCommands(s.mockCtrl)
	s.mockSchedules = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockBatches = queriesmock.NewMockBatchQueries(s.mockCtrl)
	s.mockTasks = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockCapacity = queriesmock.NewMockCapacityQueries(s.mockCtrl)

	admin := api.NewAdminHandler(s.mockContainer, s.mockSchedules, s.mockBatches, s.mockTasks)
	s.router.GET("/admin/check-dispatch", admin.CheckDispatch)
	s.router.POST("/admin/check-milestones", admin.CheckMilestones)
	s.router.POST("/admin/mark-ready-batches", admin.MarkReadyBatches)
	s.router.GET("/admin/batches", admin.ListBatches)
	s.router.POST("/admin/batches/:id/dispatch", admin.DispatchBatch)
	s.router.GET("/admin/schedules", admin.ListSchedules)
	s.router.PATCH("/admin/schedules/:name", admin.UpdateSchedule)

	container := api.NewContainerHandler(s.mockCapacity)
	s.router.GET("/container/progress", container.Progress)
	s.router.GET("/container/capacity/history", container.History)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func progressAt(total string) capacity.Progress {
	return capacity.NewProgress(decimal.RequireFromString(total), capacity.Capacity)
}

func (s *AdminHandlerTestSuite) TestCheckDispatch() {
	s.Run("success: below threshold reports remaining volume", func() {
		s.mockContainer.EXPECT().CheckDispatch(gomock.Any()).Return(&commands.DispatchReport{
			Ready:     false,
			Progress:  progressAt("40"),
			Remaining: decimal.RequireFromString("26.5"),
			Message:   "Need 26.50 m3 more before dispatch",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/check-dispatch", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["ready"])
		s.Equal("26.50", body["remaining_volume"])
		s.Equal([]any{}, body["notified"])
		s.NotContains(body, "batch_id")
	})

	s.Run("success: ready batch lists notified channels", func() {
		batchID := int64(4)
		s.mockContainer.EXPECT().CheckDispatch(gomock.Any()).Return(&commands.DispatchReport{
			Ready:    true,
			Progress: progressAt("64"),
			BatchID:  &batchID,
			Notified: []notification.Channel{notification.ChannelEmail, notification.ChannelWhatsApp},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/check-dispatch", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["ready"])
		s.Equal(float64(4), body["batch_id"])
		s.Equal([]any{"email", "whatsapp"}, body["notified"])
	})
}

func (s *AdminHandlerTestSuite) TestCheckMilestones() {
	s.Run("success: lists reached milestones", func() {
		s.mockContainer.EXPECT().CheckMilestones(gomock.Any()).Return(&commands.MilestoneReport{
			Progress: progressAt("50"),
			Reached: []commands.MilestoneResult{
				{Percent: 50, Threshold: decimal.RequireFromString("33.5"), Notified: true},
				{Percent: 75, Threshold: decimal.RequireFromString("50.25"), Notified: false, Error: "smtp down"},
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/check-milestones", nil, "")

		var body struct {
			Percent string `json:"percent"`
			Reached []struct {
				Percent   int    `json:"percent"`
				Threshold string `json:"threshold"`
				Notified  bool   `json:"notified"`
				Error     string `json:"error"`
			} `json:"reached"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Reached, 2)
		s.Equal("33.50", body.Reached[0].Threshold)
		s.Equal("smtp down", body.Reached[1].Error)
	})

	s.Run("error: 500 when the check fails", func() {
		s.mockContainer.EXPECT().CheckMilestones(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/check-milestones", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *AdminHandlerTestSuite) TestMarkReadyBatches() {
	s.Run("success: returns one line per open batch", func() {
		s.mockContainer.EXPECT().MarkReadyBatches(gomock.Any()).Return([]commands.BatchReadiness{
			{BatchID: 1, CurrentVolume: decimal.RequireFromString("61"), TargetVolume: capacity.Capacity, Ready: true, Line: "Batch 1 marked ready"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/mark-ready-batches", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(true, body[0]["ready"])
		s.Equal("61.00", body[0]["current_volume"])
	})
}

func (s *AdminHandlerTestSuite) TestDispatchBatch() {
	s.Run("success: returns the dispatched batch", func() {
		now := time.Now()
		s.mockContainer.EXPECT().DispatchBatch(gomock.Any(), int64(2)).Return(nil).Times(1)
		s.mockBatches.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&queries.BatchView{
			ID:     2, TargetVolume: capacity.Capacity, CurrentVolume: decimal.RequireFromString("62"),
			Status: "dispatched", CreatedAt: now, DispatchedAt: &now,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/batches/2/dispatch", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("dispatched", body["status"])
		s.Contains(body, "dispatched_at")
	})

	s.Run("error: 409 when the batch is not ready", func() {
		s.mockContainer.EXPECT().DispatchBatch(gomock.Any(), int64(3)).
			Return(errs.Mark(errors.New("batch is not ready"), commands.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/batches/3/dispatch", nil, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, "status")
	})

	s.Run("error: 404 for an unknown batch", func() {
		s.mockContainer.EXPECT().DispatchBatch(gomock.Any(), int64(9)).Return(commands.ErrBatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/batches/9/dispatch", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateSchedule() {
	s.Run("success: returns the refreshed schedule list", func() {
		expr := "*/5 * * * *"
		s.mockSchedules.EXPECT().UpdateSchedule(gomock.Any(), "check_dispatch", reqdto.UpdateScheduleRequest{Schedule: &expr}).
			Return(nil).Times(1)
		s.mockTasks.EXPECT().List(gomock.Any()).Return([]*queries.ScheduleView{
			{Name: "check_dispatch", Schedule: expr, Enabled: true, NextRunAt: time.Now()},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/schedules/check_dispatch",
			map[string]any{"schedule": expr}, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(expr, body[0]["schedule"])
	})

	s.Run("error: invalid cron expression", func() {
		expr := "every tuesday"
		s.mockSchedules.EXPECT().UpdateSchedule(gomock.Any(), "check_dispatch", gomock.Any()).
			Return(errs.Field("schedule", errors.New("invalid cron expression"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/schedules/check_dispatch",
			map[string]any{"schedule": expr}, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "schedule")
	})

	s.Run("error: 404 for an unknown task", func() {
		s.mockSchedules.EXPECT().UpdateSchedule(gomock.Any(), "nope", gomock.Any()).Return(commands.ErrScheduleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/schedules/nope",
			map[string]any{"enabled": false}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *AdminHandlerTestSuite) TestContainerProgress() {
	s.Run("success: renders volumes with two decimals", func() {
		s.mockCapacity.EXPECT().Progress(gomock.Any()).Return(&queries.ProgressView{
			TotalVolume: decimal.RequireFromString("33.5"),
			GoalVolume:  capacity.Capacity,
			Percent:     decimal.RequireFromString("50"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/container/progress", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("33.50", body["total_volume"])
		s.Equal("66.16", body["goal_volume"])
		s.Equal("50.00", body["percent"])
	})

	s.Run("success: history honours the limit", func() {
		s.mockCapacity.EXPECT().History(gomock.Any(), 5).Return([]*queries.CapacitySnapshotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/container/capacity/history?limit=5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
