//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/batch"
	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	commandsmock "cargo-consolidation/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContainerUseCaseTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	h          *uowHarness
	dispatcher *commandsmock.MockNotificationDispatcher
	admin      commands.AdminContacts
	uc         commands.ContainerCommands
}

func (s *ContainerUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newUOWHarness(s.mockCtrl)
	s.dispatcher = commandsmock.NewMockNotificationDispatcher(s.mockCtrl)
	s.admin = commands.AdminContacts{Email: "admin@example.com"}
	s.uc = commands.NewContainerUseCase(s.h.uow, s.dispatcher, s.admin, s.h.clock, discardLogger())
}

func (s *ContainerUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContainerUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ContainerUseCaseTestSuite))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func openBatch(id int64) *batch.ContainerBatch {
	return batch.ReconstructContainerBatch(id, capacity.Capacity, batch.StatusOpen, testNow, nil, nil)
}

// ================================================================================
// TestCheckMilestones
// ================================================================================

func (s *ContainerUseCaseTestSuite) TestCheckMilestones() {
	ctx := context.Background()

	s.Run("success: alerts the admin for the 50% band and records a snapshot", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("33.08"), nil)
		s.h.capacity.EXPECT().RecordSnapshot(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, snap capacity.Snapshot) error {
				s.Equal("50.00", snap.Percent.StringFixed(2))
				s.Equal(testNow, snap.RecordedAt)
				return nil
			})
		s.dispatcher.EXPECT().Dispatch(ctx, commands.DispatchRequest{
			Channel:   notification.ChannelEmail,
			Recipient: "admin@example.com",
			Template:  notification.TemplateMilestoneReached,
			Vars: map[string]string{
				"total_volume": "33.08",
				"goal_volume":  "66.16",
				"percent":      "50.00",
				"milestone":    "50",
			},
		}).Return(nil)

		report, err := s.uc.CheckMilestones(ctx)

		s.Require().NoError(err)
		s.Require().Len(report.Reached, 1)
		s.Equal(50, report.Reached[0].Percent)
		s.True(report.Reached[0].Notified)
		s.Empty(report.Reached[0].Error)
	})

	s.Run("success: volume between bands sends nothing", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("20"), nil)
		s.h.capacity.EXPECT().RecordSnapshot(ctx, nil, gomock.Any()).Return(nil)

		report, err := s.uc.CheckMilestones(ctx)

		s.Require().NoError(err)
		s.Empty(report.Reached)
	})

	s.Run("success: alert failure is reported, not returned", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("16.54"), nil)
		s.h.capacity.EXPECT().RecordSnapshot(ctx, nil, gomock.Any()).Return(nil)
		s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(errors.New("sendgrid: 503"))

		report, err := s.uc.CheckMilestones(ctx)

		s.Require().NoError(err)
		s.Require().Len(report.Reached, 1)
		s.Equal(25, report.Reached[0].Percent)
		s.False(report.Reached[0].Notified)
		s.Equal("sendgrid: 503", report.Reached[0].Error)
	})

	s.Run("error: volume query failure", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(decimal.Zero, errors.New("timeout"))

		_, err := s.uc.CheckMilestones(ctx)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

// ================================================================================
// TestCheckDispatch
// ================================================================================

func (s *ContainerUseCaseTestSuite) TestCheckDispatch() {
	ctx := context.Background()

	s.Run("success: below capacity reports what remains", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("10"), nil)

		report, err := s.uc.CheckDispatch(ctx)

		s.Require().NoError(err)
		s.False(report.Ready)
		s.Nil(report.BatchID)
		s.Empty(report.Notified)
		s.Equal("56.16", report.Remaining.StringFixed(2))
		s.Equal("10.00m³ booked (15.11%). 56.16m³ remaining.", report.Message)
	})

	s.Run("success: at capacity marks the batch ready and emails the admin", func() {
		b := openBatch(7)
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("70"), nil)
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return([]*batch.ContainerBatch{b}, nil)
		s.h.batches.EXPECT().Volume(ctx, nil, int64(7)).Return(dec("70"), nil)
		s.h.batches.EXPECT().Save(ctx, nil, b).Return(nil)
		s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.DispatchRequest) error {
				s.Equal(notification.ChannelEmail, req.Channel)
				s.Equal(notification.TemplateDispatchReady, req.Template)
				s.Equal("7", req.Vars["batch_id"])
				s.Equal("100.00", req.Vars["percent"])
				return nil
			})

		report, err := s.uc.CheckDispatch(ctx)

		s.Require().NoError(err)
		s.True(report.Ready)
		s.Require().NotNil(report.BatchID)
		s.Equal(int64(7), *report.BatchID)
		s.Equal(batch.StatusReady, b.Status())
		s.Equal([]notification.Channel{notification.ChannelEmail}, report.Notified)
		s.Equal("0.00", report.Remaining.StringFixed(2))
		s.Equal("Capacity reached: 70.00m³ ≥ 66.16m³. Ready to dispatch.", report.Message)
	})

	s.Run("success: failed email still reports readiness", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("66.16"), nil)
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return(nil, nil)
		s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(errors.New("no sender"))

		report, err := s.uc.CheckDispatch(ctx)

		s.Require().NoError(err)
		s.True(report.Ready)
		s.Nil(report.BatchID)
		s.Empty(report.Notified)
	})

	s.Run("error: batch listing failure", func() {
		s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("70"), nil)
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return(nil, errors.New("lock timeout"))

		_, err := s.uc.CheckDispatch(ctx)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *ContainerUseCaseTestSuite) TestCheckDispatchWithWhatsApp() {
	ctx := context.Background()
	uc := commands.NewContainerUseCase(s.h.uow, s.dispatcher,
		commands.AdminContacts{Email: "admin@example.com", WhatsApp: "+233200000000"}, s.h.clock, discardLogger())

	s.h.capacity.EXPECT().TotalBookedVolume(ctx, nil).Return(dec("66.20"), nil)
	s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return(nil, nil)
	gomock.InOrder(
		s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(nil),
		s.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.DispatchRequest) error {
				s.Equal(notification.ChannelWhatsApp, req.Channel)
				s.Equal("+233200000000", req.Recipient)
				s.Equal(notification.TemplateDispatchReadyWhatsApp, req.Template)
				return nil
			}),
	)

	report, err := uc.CheckDispatch(ctx)

	s.Require().NoError(err)
	s.Equal([]notification.Channel{notification.ChannelEmail, notification.ChannelWhatsApp}, report.Notified)
}

// ================================================================================
// TestMarkReadyBatches
// ================================================================================

func (s *ContainerUseCaseTestSuite) TestMarkReadyBatches() {
	ctx := context.Background()

	s.Run("success: marks full batches and reports the rest", func() {
		full, short := openBatch(1), openBatch(2)
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return([]*batch.ContainerBatch{full, short}, nil)
		s.h.batches.EXPECT().Volume(ctx, nil, int64(1)).Return(dec("66.16"), nil)
		s.h.batches.EXPECT().Volume(ctx, nil, int64(2)).Return(dec("12.5"), nil)
		s.h.batches.EXPECT().Save(ctx, nil, full).Return(nil)

		out, err := s.uc.MarkReadyBatches(ctx)

		s.Require().NoError(err)
		s.Require().Len(out, 2)
		s.True(out[0].Ready)
		s.Equal("Batch #1 marked ready (66.16 / 66.16 m³)", out[0].Line)
		s.False(out[1].Ready)
		s.Equal("Batch #2 not ready: 12.50 / 66.16 m³.", out[1].Line)
		s.Equal(batch.StatusOpen, short.Status())
	})

	s.Run("success: no open batches", func() {
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return(nil, nil)

		out, err := s.uc.MarkReadyBatches(ctx)

		s.Require().NoError(err)
		s.Empty(out)
	})

	s.Run("error: save failure", func() {
		b := openBatch(3)
		s.h.batches.EXPECT().ListOpenForUpdate(ctx, nil).Return([]*batch.ContainerBatch{b}, nil)
		s.h.batches.EXPECT().Volume(ctx, nil, int64(3)).Return(dec("70"), nil)
		s.h.batches.EXPECT().Save(ctx, nil, b).Return(errors.New("deadlock"))

		_, err := s.uc.MarkReadyBatches(ctx)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

// ================================================================================
// TestDispatchBatch
// ================================================================================

func (s *ContainerUseCaseTestSuite) TestDispatchBatch() {
	ctx := context.Background()

	s.Run("success: ready batch is dispatched", func() {
		readyAt := testNow.Add(-24 * time.Hour)
		b := batch.ReconstructContainerBatch(4, capacity.Capacity, batch.StatusReady, testNow, &readyAt, nil)
		s.h.batches.EXPECT().FindByIDForUpdate(ctx, nil, int64(4)).Return(b, nil)
		s.h.batches.EXPECT().Save(ctx, nil, b).Return(nil)

		err := s.uc.DispatchBatch(ctx, 4)

		s.Require().NoError(err)
		s.Equal(batch.StatusDispatched, b.Status())
		s.Require().NotNil(b.DispatchedAt())
		s.Equal(testNow, *b.DispatchedAt())
	})

	s.Run("error: open batch cannot be dispatched", func() {
		s.h.batches.EXPECT().FindByIDForUpdate(ctx, nil, int64(5)).Return(openBatch(5), nil)

		err := s.uc.DispatchBatch(ctx, 5)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrInvalidTransition))
	})

	s.Run("error: unknown batch", func() {
		s.h.batches.EXPECT().FindByIDForUpdate(ctx, nil, int64(99)).Return(nil, notFoundErr("batch not found"))

		err := s.uc.DispatchBatch(ctx, 99)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrBatchNotFound))
	})
}
