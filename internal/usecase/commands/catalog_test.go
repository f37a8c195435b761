//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/domain/tracking"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/shared"
	"cargo-consolidation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogUseCaseTestSuite covers the staff-maintained records: box types,
// notification templates and tracking history.
type CatalogUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	h         *uowHarness
	boxes     commands.BoxCommands
	templates commands.TemplateCommands
	tracking  commands.TrackingCommands
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newUOWHarness(s.mockCtrl)
	s.boxes = commands.NewBoxUseCase(s.h.uow)
	s.templates = commands.NewTemplateUseCase(s.h.uow, s.h.clock)
	s.tracking = commands.NewTrackingUseCase(s.h.uow, s.h.clock)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

// ================================================================================
// TestCreateBoxType
// ================================================================================

func (s *CatalogUseCaseTestSuite) TestCreateBoxType() {
	ctx := context.Background()

	s.Run("success", func() {
		req := builder.NewBoxBuilder().AsSmall().BuildCreateRequestDTO()
		s.h.boxes.EXPECT().Create(ctx, nil, gomock.Any()).Return(int64(5), nil)

		id, err := s.boxes.CreateBoxType(ctx, req)

		s.Require().NoError(err)
		s.Equal(int64(5), id)
	})

	s.Run("error: invalid dimensions never reach the database", func() {
		req := builder.NewBoxBuilder().With(func(b *builder.BoxBuilder) { b.HeightCM = 0 }).BuildCreateRequestDTO()

		_, err := s.boxes.CreateBoxType(ctx, req)

		s.Require().Error(err)
		s.NotNil(errs.Fields(err))
	})

	s.Run("error: duplicate name", func() {
		s.h.boxes.EXPECT().Create(ctx, nil, gomock.Any()).Return(int64(0), duplicateErr("box_types_name_key"))

		_, err := s.boxes.CreateBoxType(ctx, builder.NewBoxBuilder().BuildCreateRequestDTO())

		s.True(errs.Is(err, commands.ErrDuplicateBoxType))
		s.Contains(errs.Fields(err), "name")
	})
}

// ================================================================================
// Templates
// ================================================================================

func (s *CatalogUseCaseTestSuite) TestCreateTemplate() {
	ctx := context.Background()
	req := reqdto.CreateTemplateRequest{
		Name:    "pickup_reminder",
		Subject: "Pickup tomorrow",
		Body:    "Hi {{customer_name}}, we collect on {{pickup_date}}.",
		Channel: "EMAIL",
	}

	s.Run("success: defaults to active", func() {
		s.h.templates.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, t *notification.Template) (int64, error) {
				s.Equal(notification.ChannelEmail, t.Channel())
				s.True(t.IsActive())
				s.Equal(testNow, t.CreatedAt())
				return 9, nil
			})

		id, err := s.templates.CreateTemplate(ctx, req)

		s.Require().NoError(err)
		s.Equal(int64(9), id)
	})

	s.Run("error: unknown channel", func() {
		bad := req
		bad.Channel = "sms"

		_, err := s.templates.CreateTemplate(ctx, bad)
		s.Contains(errs.Fields(err), "channel")
	})

	s.Run("error: duplicate name", func() {
		s.h.templates.EXPECT().Create(ctx, nil, gomock.Any()).Return(int64(0), duplicateErr(repository.TemplateNameConstraint))

		_, err := s.templates.CreateTemplate(ctx, req)

		s.True(errs.Is(err, commands.ErrDuplicateTemplateName))
		s.Contains(errs.Fields(err), "name")
	})
}

func (s *CatalogUseCaseTestSuite) TestUpdateTemplate() {
	ctx := context.Background()

	s.Run("success: only supplied fields change", func() {
		tmpl := emailTemplate("pickup_reminder", true)
		s.h.templates.EXPECT().FindByIDForUpdate(ctx, nil, int64(1)).Return(tmpl, nil)
		s.h.templates.EXPECT().Update(ctx, nil, tmpl).Return(nil)

		err := s.templates.UpdateTemplate(ctx, 1, reqdto.UpdateTemplateRequest{IsActive: boolPtr(false)})

		s.Require().NoError(err)
		s.False(tmpl.IsActive())
		s.Equal("pickup_reminder", tmpl.Name())
		s.Equal("Booking {{reference_code}}", tmpl.Subject())
	})

	s.Run("error: switching to email without a subject", func() {
		tmpl := notification.ReconstructTemplate(2, "pickup_whatsapp", "", "", "Hi", notification.ChannelWhatsApp, true, testNow, testNow)
		s.h.templates.EXPECT().FindByIDForUpdate(ctx, nil, int64(2)).Return(tmpl, nil)

		err := s.templates.UpdateTemplate(ctx, 2, reqdto.UpdateTemplateRequest{Channel: strPtr("email")})
		s.Contains(errs.Fields(err), "subject")
	})

	s.Run("error: not found", func() {
		s.h.templates.EXPECT().FindByIDForUpdate(ctx, nil, int64(3)).Return(nil, notFoundErr("template not found"))

		err := s.templates.UpdateTemplate(ctx, 3, reqdto.UpdateTemplateRequest{Name: strPtr("x")})
		s.True(errs.Is(err, commands.ErrTemplateNotFound))
	})
}

func (s *CatalogUseCaseTestSuite) TestDeleteTemplate() {
	ctx := context.Background()

	s.Run("success", func() {
		s.h.templates.EXPECT().Delete(ctx, nil, int64(1)).Return(nil)
		s.NoError(s.templates.DeleteTemplate(ctx, 1))
	})

	s.Run("error: not found", func() {
		s.h.templates.EXPECT().Delete(ctx, nil, int64(2)).Return(notFoundErr("template not found"))
		s.True(errs.Is(s.templates.DeleteTemplate(ctx, 2), commands.ErrTemplateNotFound))
	})
}

// ================================================================================
// TestAddRecord
// ================================================================================

func (s *CatalogUseCaseTestSuite) TestAddRecord() {
	ctx := context.Background()
	bookingID := uuid.New()

	s.Run("success", func() {
		s.h.reads.EXPECT().BookingByID(ctx, bookingID).Return(&shared.BookingSnapshot{ID: bookingID}, nil)
		s.h.tracking.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *tracking.Record) (int64, error) {
				s.Equal("In Transit", r.Status)
				s.Equal("Tema Port", r.Location)
				s.Equal(testNow, r.Timestamp)
				return 11, nil
			})

		id, err := s.tracking.AddRecord(ctx, bookingID, " In Transit ", "Tema Port")

		s.Require().NoError(err)
		s.Equal(int64(11), id)
	})

	s.Run("error: blank location", func() {
		_, err := s.tracking.AddRecord(ctx, bookingID, "In Transit", "  ")
		s.Contains(errs.Fields(err), "location")
	})

	s.Run("error: unknown booking", func() {
		s.h.reads.EXPECT().BookingByID(ctx, bookingID).Return(nil, notFoundErr("booking not found"))

		_, err := s.tracking.AddRecord(ctx, bookingID, "Delivered", "Accra")
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})

	s.Run("error: insert failure", func() {
		s.h.reads.EXPECT().BookingByID(ctx, bookingID).Return(&shared.BookingSnapshot{ID: bookingID}, nil)
		s.h.tracking.EXPECT().Create(ctx, nil, gomock.Any()).Return(int64(0), errors.New("conn reset"))

		_, err := s.tracking.AddRecord(ctx, bookingID, "Delivered", "Accra")
		s.Error(err)
	})
}
