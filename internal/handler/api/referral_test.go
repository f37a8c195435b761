//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cargo-consolidation/internal/handler/api"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"
	"cargo-consolidation/tests/common/httptest"
	commandsmock "cargo-consolidation/tests/mock/commands"
	queriesmock "cargo-consolidation/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReferralHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReferralCommands
	mockQueries  *queriesmock.MockReferralQueries
	view         *queries.ReferralView
}

func (s *ReferralHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReferralCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReferralQueries(s.mockCtrl)

	handler := api.NewReferralHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/referrals", handler.Create)
	s.router.POST("/referrals/:id/clicks", handler.TrackClick)
	s.router.GET("/referrals", handler.List)
	s.router.GET("/referrals/:id", handler.Get)
	s.router.PATCH("/referrals/:id/reward", handler.UpdateReward)

	s.view = &queries.ReferralView{
		ID:                  uuid.New(),
		Email:               "kofi@example.com",
		Code:                "AB12CD34EF56",
		TotalReferrals:      2,
		SuccessfulReferrals: 1,
		LinkClicks:          4,
		RewardAmount:        decimal.RequireFromString("9.07"),
		RewardStatus:        "pending",
		TotalRewardEarned:   decimal.RequireFromString("9.07"),
		ShareableLink:       "http://localhost:3000/book?ref=AB12CD34EF56",
		ConversionRate:      decimal.RequireFromString("25"),
		CreatedAt:           time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
	}
}

func (s *ReferralHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReferralHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReferralHandlerTestSuite))
}

func (s *ReferralHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 with code and shareable link", func() {
		s.mockCommands.EXPECT().CreateReferral(gomock.Any(), commands.CreateReferralRequest{Email: "kofi@example.com"}).
			Return(&commands.CreateReferralResult{ID: s.view.ID, Code: s.view.Code}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/referrals", map[string]any{"email": "kofi@example.com"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("AB12CD34EF56", body["code"])
		s.Equal(s.view.ShareableLink, body["shareable_link"])
		s.Equal("25.00", body["conversion_rate"])
	})

	s.Run("error: 400 without an email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/referrals", map[string]any{}, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "email")
	})

	s.Run("error: 400 for a malformed email", func() {
		s.mockCommands.EXPECT().CreateReferral(gomock.Any(), gomock.Any()).
			Return(nil, errs.Field("email", errors.New("invalid email format"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/referrals", map[string]any{"email": "nope"}, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "email")
	})
}

func (s *ReferralHandlerTestSuite) TestTrackClick() {
	s.Run("success: normalizes the code and returns 204", func() {
		s.mockCommands.EXPECT().TrackClick(gomock.Any(), "AB12CD34EF56").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/referrals/ab12cd34ef56/clicks", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown code", func() {
		s.mockCommands.EXPECT().TrackClick(gomock.Any(), "ZZZZZZZZZZZZ").Return(commands.ErrReferralNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/referrals/ZZZZZZZZZZZZ/clicks", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ReferralHandlerTestSuite) TestList() {
	s.Run("success: filters by reward status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "pending", (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.ReferralView{s.view}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/referrals?reward_status=pending", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body["items"], 1)
	})
}

func (s *ReferralHandlerTestSuite) TestUpdateReward() {
	url := "/referrals/" + s.view.ID.String() + "/reward"

	s.Run("success: returns the updated referral", func() {
		approved := *s.view
		approved.RewardStatus = "approved"
		s.mockCommands.EXPECT().ChangeRewardStatus(gomock.Any(), s.view.ID, "approved").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(&approved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"reward_status": "approved"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body["reward_status"])
	})

	s.Run("error: 409 for a disallowed transition", func() {
		s.mockCommands.EXPECT().ChangeRewardStatus(gomock.Any(), s.view.ID, "paid").
			Return(errs.Mark(errors.New("invalid reward status transition"), commands.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"reward_status": "paid"}, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, "status")
	})

	s.Run("error: 400 for an unknown status", func() {
		s.mockCommands.EXPECT().ChangeRewardStatus(gomock.Any(), s.view.ID, "gold").
			Return(errs.Field("reward_status", errors.New("reward status must be one of pending, approved, paid, rejected"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"reward_status": "gold"}, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "reward_status")
	})

	s.Run("error: 404 for an unknown referral", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ChangeRewardStatus(gomock.Any(), id, "approved").Return(commands.ErrReferralNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/referrals/"+id.String()+"/reward",
			map[string]any{"reward_status": "approved"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
