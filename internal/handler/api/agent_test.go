//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/handler/api"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"
	"cargo-consolidation/tests/common/httptest"
	"cargo-consolidation/tests/common/testutil"
	commandsmock "cargo-consolidation/tests/mock/commands"
	queriesmock "cargo-consolidation/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAgentCommands
	mockQueries  *queriesmock.MockAgentQueries
	staffID      uuid.UUID
	view         *queries.AgentApplicationView
}

func (s *AgentHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAgentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAgentQueries(s.mockCtrl)
	s.staffID = uuid.New()

	handler := api.NewAgentHandler(s.mockCommands, s.mockQueries)
	s.router.Use(fakeAuth(s.staffID, user.RoleStaff))
	s.router.POST("/agents", handler.Apply)
	s.router.GET("/agents", handler.List)
	s.router.GET("/agents/:id", handler.Get)
	s.router.PATCH("/agents/:id/review", handler.Review)

	s.view = &queries.AgentApplicationView{
		ID:          uuid.New(),
		Name:        "Yaw Boateng",
		Email:       "yaw@example.com",
		Phone:       "+233 20 123 4567",
		Status:      "pending",
		SubmittedAt: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
	}
}

func (s *AgentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}

func (s *AgentHandlerTestSuite) TestApply() {
	reqBody := map[string]any{"name": "Yaw Boateng", "email": "yaw@example.com", "phone": "+233 20 123 4567"}

	s.Run("success: returns 201 with a pending application", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), commands.ApplyAgentRequest{
			Name: "Yaw Boateng", Email: "yaw@example.com", Phone: "+233 20 123 4567",
		}).Return(s.view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agents", reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body["status"])
	})

	s.Run("error: 400 for missing required fields", func() {
		for _, field := range []string{"name", "email", "phone"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agents", requestMap, "")
				httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, field)
			})
		}
	})

	s.Run("error: domain validation names the field", func() {
		s.mockCommands.EXPECT().Apply(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Field("phone", errors.New("phone must be 7-20 digits"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agents", reqBody, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "phone")
	})
}

func (s *AgentHandlerTestSuite) TestReview() {
	url := "/agents/" + s.view.ID.String() + "/review"
	reqBody := map[string]any{"status": "approved", "admin_notes": "verified references"}

	s.Run("success: records the reviewer from the token", func() {
		reviewed := *s.view
		reviewed.Status = "approved"
		reviewed.ReviewedBy = &s.staffID
		s.mockCommands.EXPECT().Review(gomock.Any(), s.view.ID, commands.ReviewApplicationRequest{
			Status: "approved", AdminNotes: "verified references",
		}, s.staffID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(&reviewed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "staff-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body["status"])
		s.Equal(s.staffID.String(), body["reviewed_by"])
	})

	s.Run("error: 403 without an authenticated reviewer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 409 when the application is already decided", func() {
		s.mockCommands.EXPECT().Review(gomock.Any(), s.view.ID, gomock.Any(), s.staffID).
			Return(errs.Mark(errors.New("invalid application status transition"), commands.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "staff-token")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, "status")
	})

	s.Run("error: 404 for an unknown application", func() {
		s.mockCommands.EXPECT().Review(gomock.Any(), s.view.ID, gomock.Any(), s.staffID).
			Return(errs.Mark(errors.New("no rows"), commands.ErrApplicationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *AgentHandlerTestSuite) TestList() {
	s.Run("success: filters by status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "under_review", (*queries.Cursor)(nil), 10).
			Return([]*queries.AgentApplicationView{s.view}, &queries.Cursor{After: "c2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents?status=under_review&limit=10", nil, "staff-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("c2", body["next_cursor"])
	})
}
