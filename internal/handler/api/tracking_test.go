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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTrackingCommands
	mockQueries  *queriesmock.MockTrackingQueries
}

func (s *TrackingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTrackingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTrackingQueries(s.mockCtrl)

	handler := api.NewTrackingHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/tracking", handler.ListByBooking)
	s.router.GET("/tracking/:id", handler.Get)
	s.router.POST("/tracking", handler.Create)
}

func (s *TrackingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}

func (s *TrackingHandlerTestSuite) TestListByBooking() {
	bookingID := uuid.New()

	s.Run("success: lists records for the booking", func() {
		records := []*queries.TrackingView{
			{ID: 2, BookingID: bookingID, Status: "in_transit", Location: "Tema Port", Timestamp: time.Now()},
			{ID: 1, BookingID: bookingID, Status: "picked_up", Location: "Accra", Timestamp: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).Return(records, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tracking?booking_id="+bookingID.String(), nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("in_transit", body[0]["status"])
	})

	s.Run("error: 400 without a booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tracking", nil, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "booking_id")
	})
}

func (s *TrackingHandlerTestSuite) TestCreate() {
	bookingID := uuid.New()
	reqBody := map[string]any{"booking_id": bookingID.String(), "status": "picked_up", "location": "Accra"}

	s.Run("success: returns 201 with the stored record", func() {
		s.mockCommands.EXPECT().AddRecord(gomock.Any(), bookingID, "picked_up", "Accra").Return(int64(7), nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&queries.TrackingView{ID: 7, BookingID: bookingID, Status: "picked_up", Location: "Accra", Timestamp: time.Now()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tracking", reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(float64(7), body["id"])
	})

	s.Run("error: unknown booking is a field error", func() {
		s.mockCommands.EXPECT().AddRecord(gomock.Any(), bookingID, "picked_up", "Accra").
			Return(int64(0), errs.Field("booking_id", commands.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tracking", reqBody, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest, "booking_id")
	})

	s.Run("error: 500 when the insert fails", func() {
		s.mockCommands.EXPECT().AddRecord(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("insert failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tracking", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *TrackingHandlerTestSuite) TestGet() {
	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, queries.ErrTrackingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tracking/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
