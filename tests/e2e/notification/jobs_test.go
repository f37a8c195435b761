//go:build e2e

package notification_test

import (
	"context"
	"testing"
	"time"

	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/usecase/shared"
	"cargo-consolidation/tests/common/dbtest"
	"cargo-consolidation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type JobStoreSuite struct {
	e2e.SharedSuite
	repo *repository.NotificationRepository
}

func (s *JobStoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewNotificationRepository()
}

func (s *JobStoreSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestJobStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JobStoreSuite))
}

func jobIDs(jobs []*shared.NotificationJob) []uuid.UUID {
	ids := make([]uuid.UUID, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

// =============================================================================
// TestStaleJobs
// =============================================================================

func (s *JobStoreSuite) TestStaleJobs() {
	ctx := context.Background()
	now := time.Now().UTC()
	longAgo := now.Add(-time.Hour)

	s.Run("Normal case: stale job with attempts left is reclaimed", func() {
		t := s.T()
		id := dbtest.CreateNotificationJob(t, s.DB, "running", 2, 4, longAgo)

		abandoned, err := s.repo.AbandonStaleJobs(ctx, s.DB, now)
		s.Require().NoError(err)
		s.Empty(abandoned)

		claimed, err := s.repo.ClaimDueJobs(ctx, s.DB, now, 10)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{id}, jobIDs(claimed))
		s.Equal(3, claimed[0].Attempts)
	})

	s.Run("Normal case: stale job on its final attempt is failed, not reclaimed", func() {
		t := s.T()
		id := dbtest.CreateNotificationJob(t, s.DB, "running", 4, 4, longAgo)

		claimed, err := s.repo.ClaimDueJobs(ctx, s.DB, now, 10)
		s.Require().NoError(err)
		s.Empty(claimed)

		abandoned, err := s.repo.AbandonStaleJobs(ctx, s.DB, now)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{id}, jobIDs(abandoned))
		s.Equal(4, abandoned[0].Attempts)
		s.Equal(1, dbtest.CountRows(t, s.DB, "notification_jobs",
			"id = $1 AND status = 'failed' AND attempts = 4 AND last_error = $2", id, shared.ErrJobAbandoned.Error()))
	})

	s.Run("Normal case: a running job that is still fresh is left alone", func() {
		t := s.T()
		dbtest.CreateNotificationJob(t, s.DB, "running", 4, 4, now.Add(-time.Minute))

		abandoned, err := s.repo.AbandonStaleJobs(ctx, s.DB, now)
		s.Require().NoError(err)
		s.Empty(abandoned)

		claimed, err := s.repo.ClaimDueJobs(ctx, s.DB, now, 10)
		s.Require().NoError(err)
		s.Empty(claimed)
	})
}
