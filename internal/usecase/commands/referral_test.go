//go:build unit

package commands_test

import (
	"context"
	"testing"

	"cargo-consolidation/internal/domain/agent"
	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReferralUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	h        *uowHarness
	uc       commands.ReferralCommands
}

func (s *ReferralUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newUOWHarness(s.mockCtrl)
	s.uc = commands.NewReferralUseCase(s.h.uow, s.h.clock)
}

func (s *ReferralUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReferralUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReferralUseCaseTestSuite))
}

func newTestReferral(s *suite.Suite) *referral.Referral {
	code, err := referral.ParseCode("ABCDEF123456")
	s.Require().NoError(err)
	ref, err := referral.NewReferral("referrer@example.com", code, nil, testNow)
	s.Require().NoError(err)
	return ref
}

func (s *ReferralUseCaseTestSuite) TestCreateReferral() {
	ctx := context.Background()

	s.Run("success: issues a twelve character code", func() {
		referrer := uuid.New()
		s.h.referrals.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, r *referral.Referral) error {
				s.Equal("friend@example.com", r.Email())
				return nil
			})

		res, err := s.uc.CreateReferral(ctx, commands.CreateReferralRequest{Email: "Friend@Example.com", ReferrerID: &referrer})

		s.Require().NoError(err)
		s.Len(res.Code, referral.CodeLength)
		s.NotEqual(uuid.Nil, res.ID)
	})

	s.Run("success: retries after a code collision", func() {
		gomock.InOrder(
			s.h.referrals.EXPECT().Create(ctx, nil, gomock.Any()).Return(duplicateErr(repository.ReferralCodeConstraint)),
			s.h.referrals.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil),
		)

		_, err := s.uc.CreateReferral(ctx, commands.CreateReferralRequest{Email: "friend@example.com"})
		s.NoError(err)
	})

	s.Run("error: gives up after repeated collisions", func() {
		s.h.referrals.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(duplicateErr(repository.ReferralCodeConstraint)).Times(5)

		_, err := s.uc.CreateReferral(ctx, commands.CreateReferralRequest{Email: "friend@example.com"})
		s.ErrorIs(err, commands.ErrReferralCodeExhausted)
	})

	s.Run("error: invalid email", func() {
		_, err := s.uc.CreateReferral(ctx, commands.CreateReferralRequest{Email: "not-an-email"})
		s.Contains(errs.Fields(err), "email")
	})
}

func (s *ReferralUseCaseTestSuite) TestTrackClick() {
	ctx := context.Background()

	s.Run("success: lookup is case-insensitive", func() {
		ref := newTestReferral(&s.Suite)
		s.h.referrals.EXPECT().FindByCodeForUpdate(ctx, nil, "ABCDEF123456").Return(ref, nil)
		s.h.referrals.EXPECT().Save(ctx, nil, ref).Return(nil)

		s.Require().NoError(s.uc.TrackClick(ctx, "abcdef123456"))
		s.Equal(1, ref.LinkClicks())
		s.Equal(testNow, *ref.LastClickedAt())
	})

	s.Run("error: malformed code is simply not found", func() {
		s.ErrorIs(s.uc.TrackClick(ctx, "bad"), commands.ErrReferralNotFound)
	})

	s.Run("error: unknown code", func() {
		s.h.referrals.EXPECT().FindByCodeForUpdate(ctx, nil, "ZZZZZZ999999").Return(nil, notFoundErr("referral not found"))
		s.True(errs.Is(s.uc.TrackClick(ctx, "ZZZZZZ999999"), commands.ErrReferralNotFound))
	})
}

func (s *ReferralUseCaseTestSuite) TestChangeRewardStatus() {
	ctx := context.Background()

	s.Run("success: pending to approved", func() {
		ref := newTestReferral(&s.Suite)
		s.h.referrals.EXPECT().FindByIDForUpdate(ctx, nil, ref.ID()).Return(ref, nil)
		s.h.referrals.EXPECT().Save(ctx, nil, ref).Return(nil)

		s.Require().NoError(s.uc.ChangeRewardStatus(ctx, ref.ID(), "Approved"))
		s.Equal(referral.RewardApproved, ref.RewardStatus())
	})

	s.Run("error: pending cannot jump to paid", func() {
		ref := newTestReferral(&s.Suite)
		s.h.referrals.EXPECT().FindByIDForUpdate(ctx, nil, ref.ID()).Return(ref, nil)

		err := s.uc.ChangeRewardStatus(ctx, ref.ID(), "paid")

		s.True(errs.Is(err, commands.ErrInvalidTransition))
		s.Equal(referral.RewardPending, ref.RewardStatus())
	})

	s.Run("error: unknown status value", func() {
		err := s.uc.ChangeRewardStatus(ctx, uuid.New(), "cashed")
		s.Contains(errs.Fields(err), "reward_status")
	})

	s.Run("error: unknown referral", func() {
		id := uuid.New()
		s.h.referrals.EXPECT().FindByIDForUpdate(ctx, nil, id).Return(nil, notFoundErr("referral not found"))
		s.True(errs.Is(s.uc.ChangeRewardStatus(ctx, id, "approved"), commands.ErrReferralNotFound))
	})
}

// ================================================================================
// Agent applications
// ================================================================================

type AgentUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	h        *uowHarness
	uc       commands.AgentCommands
}

func (s *AgentUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.h = newUOWHarness(s.mockCtrl)
	s.uc = commands.NewAgentUseCase(s.h.uow, s.h.clock)
}

func (s *AgentUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AgentUseCaseTestSuite))
}

func pendingApplication(s *suite.Suite) *agent.Application {
	app, err := agent.NewApplication("Kwame Asante", "kwame@example.com", "+233 20 123 4567", "Asante Freight", "5 years", testNow)
	s.Require().NoError(err)
	return app
}

func (s *AgentUseCaseTestSuite) TestApply() {
	ctx := context.Background()
	req := commands.ApplyAgentRequest{
		Name:    "Kwame Asante",
		Email:   "Kwame@Example.com",
		Phone:   "+233 20 123 4567",
		Company: "Asante Freight",
	}

	s.Run("success", func() {
		var stored *agent.Application
		s.h.agents.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, a *agent.Application) error {
				stored = a
				return nil
			})

		id, err := s.uc.Apply(ctx, req)

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.ID, id)
		s.Equal(agent.StatusPending, stored.Status)
		s.Equal("kwame@example.com", stored.Email)
		s.Equal(testNow, stored.SubmittedAt)
	})

	s.Run("error: bad phone", func() {
		bad := req
		bad.Phone = "call me"

		_, err := s.uc.Apply(ctx, bad)
		s.Contains(errs.Fields(err), "phone")
	})
}

func (s *AgentUseCaseTestSuite) TestReview() {
	ctx := context.Background()
	reviewer := uuid.New()

	s.Run("success: approval records the reviewer", func() {
		app := pendingApplication(&s.Suite)
		s.h.agents.EXPECT().FindByIDForUpdate(ctx, nil, app.ID).Return(app, nil)
		s.h.agents.EXPECT().Save(ctx, nil, app).Return(nil)

		err := s.uc.Review(ctx, app.ID, commands.ReviewApplicationRequest{Status: "approved", AdminNotes: " verified "}, reviewer)

		s.Require().NoError(err)
		s.Equal(agent.StatusApproved, app.Status)
		s.Equal(&reviewer, app.ReviewedBy)
		s.Equal("verified", app.AdminNotes)
	})

	s.Run("error: decided applications are final", func() {
		app := pendingApplication(&s.Suite)
		app.Status = agent.StatusRejected
		s.h.agents.EXPECT().FindByIDForUpdate(ctx, nil, app.ID).Return(app, nil)

		err := s.uc.Review(ctx, app.ID, commands.ReviewApplicationRequest{Status: "approved"}, reviewer)
		s.True(errs.Is(err, commands.ErrInvalidTransition))
	})

	s.Run("error: notes too long stay a field error", func() {
		app := pendingApplication(&s.Suite)
		s.h.agents.EXPECT().FindByIDForUpdate(ctx, nil, app.ID).Return(app, nil)
		long := make([]byte, agent.MaxAdminNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}

		err := s.uc.Review(ctx, app.ID, commands.ReviewApplicationRequest{Status: "approved", AdminNotes: string(long)}, reviewer)

		s.Contains(errs.Fields(err), "admin_notes")
		s.False(errs.Is(err, commands.ErrInvalidTransition))
	})

	s.Run("error: unknown status value", func() {
		err := s.uc.Review(ctx, uuid.New(), commands.ReviewApplicationRequest{Status: "maybe"}, reviewer)
		s.Contains(errs.Fields(err), "status")
	})

	s.Run("error: unknown application", func() {
		id := uuid.New()
		s.h.agents.EXPECT().FindByIDForUpdate(ctx, nil, id).Return(nil, notFoundErr("application not found"))

		err := s.uc.Review(ctx, id, commands.ReviewApplicationRequest{Status: "approved"}, reviewer)
		s.True(errs.Is(err, commands.ErrApplicationNotFound))
	})
}
