//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"time"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/usecase/shared"
	sharedmock "cargo-consolidation/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

// uowHarness runs Within callbacks inline against one mocked transaction.
type uowHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	boxes         *sharedmock.MockBoxRepository
	bookings      *sharedmock.MockBookingRepository
	batches       *sharedmock.MockBatchRepository
	referrals     *sharedmock.MockReferralRepository
	agents        *sharedmock.MockAgentRepository
	tracking      *sharedmock.MockTrackingRepository
	templates     *sharedmock.MockTemplateRepository
	notifications *sharedmock.MockNotificationRepository
	capacity      *sharedmock.MockCapacityRepository
	schedules     *sharedmock.MockScheduleRepository
	clock         *clock.MockClock
}

func newUOWHarness(ctrl *gomock.Controller) *uowHarness {
	h := &uowHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		boxes:         sharedmock.NewMockBoxRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		batches:       sharedmock.NewMockBatchRepository(ctrl),
		referrals:     sharedmock.NewMockReferralRepository(ctrl),
		agents:        sharedmock.NewMockAgentRepository(ctrl),
		tracking:      sharedmock.NewMockTrackingRepository(ctrl),
		templates:     sharedmock.NewMockTemplateRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		capacity:      sharedmock.NewMockCapacityRepository(ctrl),
		schedules:     sharedmock.NewMockScheduleRepository(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Boxes().Return(h.boxes).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Batches().Return(h.batches).AnyTimes()
	h.tx.EXPECT().Referrals().Return(h.referrals).AnyTimes()
	h.tx.EXPECT().Agents().Return(h.agents).AnyTimes()
	h.tx.EXPECT().Tracking().Return(h.tracking).AnyTimes()
	h.tx.EXPECT().Templates().Return(h.templates).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().Capacity().Return(h.capacity).AnyTimes()
	h.tx.EXPECT().Schedules().Return(h.schedules).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

func duplicateErr(constraint string) error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}
