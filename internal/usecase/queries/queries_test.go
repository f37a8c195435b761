//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/queries"
	queriesmock "cargo-consolidation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func notFound() error { return infra.WrapRepoErr("not found", pgx.ErrNoRows) }

// ================================================================================
// Capacity progress
// ================================================================================

func TestCapacityProgress(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("cache hit skips the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		cache := queriesmock.NewMockProgressCache(ctrl)
		cached := &queries.ProgressView{TotalVolume: dec("12.00"), GoalVolume: dec("66.16"), Percent: dec("18.14")}
		cache.EXPECT().Get(ctx).Return(cached, true, nil)

		v, err := queries.NewCapacityQueries(store, cache, logger).Progress(ctx)

		require.NoError(t, err)
		assert.Same(t, cached, v)
	})

	t.Run("miss computes and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		cache := queriesmock.NewMockProgressCache(ctrl)
		cache.EXPECT().Get(ctx).Return(nil, false, nil)
		store.EXPECT().TotalBookedVolume(ctx).Return(dec("33.08"), nil)
		cache.EXPECT().Set(ctx, gomock.Any()).Return(nil)

		v, err := queries.NewCapacityQueries(store, cache, logger).Progress(ctx)

		require.NoError(t, err)
		assert.Equal(t, "33.08", v.TotalVolume.StringFixed(2))
		assert.Equal(t, "66.16", v.GoalVolume.StringFixed(2))
		assert.Equal(t, "50.00", v.Percent.StringFixed(2))
	})

	t.Run("cache errors fall back to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		cache := queriesmock.NewMockProgressCache(ctrl)
		cache.EXPECT().Get(ctx).Return(nil, false, errors.New("redis: connection refused"))
		store.EXPECT().TotalBookedVolume(ctx).Return(dec("80"), nil)
		cache.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis: connection refused"))

		v, err := queries.NewCapacityQueries(store, cache, logger).Progress(ctx)

		require.NoError(t, err)
		assert.Equal(t, "100.00", v.Percent.StringFixed(2))
	})

	t.Run("works without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		store.EXPECT().TotalBookedVolume(ctx).Return(decimal.Zero, nil)

		v, err := queries.NewCapacityQueries(store, nil, logger).Progress(ctx)

		require.NoError(t, err)
		assert.True(t, v.Percent.IsZero())
	})

	t.Run("history clamps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		store.EXPECT().History(ctx, int32(queries.MaxListLimit)).Return(nil, nil)

		_, err := queries.NewCapacityQueries(store, nil, logger).History(ctx, 10_000)
		require.NoError(t, err)
	})
}

// ================================================================================
// Volume calculator
// ================================================================================

func TestQuoteCalculate(t *testing.T) {
	ctx := context.Background()
	cube := &queries.BoxTypeView{ID: 1, Name: "Cube", Volume: dec("1"), PricePerBox: dec("400.00")}
	small := &queries.BoxTypeView{ID: 2, Name: "S", Volume: dec("0.009"), PricePerBox: dec("50.00")}

	t.Run("applies the tier for the combined box count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boxes := queriesmock.NewMockBoxReadStore(ctrl)
		boxes.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return([]*queries.BoxTypeView{cube, small}, nil)

		q, err := queries.NewQuoteQueries(boxes).Calculate(ctx, []queries.QuoteItem{
			{BoxTypeID: 1, Quantity: 10},
			{BoxTypeID: 2, Quantity: 1},
			{BoxTypeID: 1, Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, 12, q.TotalBoxes)
		assert.Equal(t, "11.01", q.TotalVolume.StringFixed(2))
		assert.Equal(t, "bronze", q.Tier)
		// 11 x 400 + 1 x 50 = 4450; 5% off
		assert.Equal(t, "4450.00", q.Subtotal.StringFixed(2))
		assert.Equal(t, "222.50", q.Discount.StringFixed(2))
		assert.Equal(t, "4227.50", q.TotalCost.StringFixed(2))
	})

	t.Run("reports every unknown box id once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boxes := queriesmock.NewMockBoxReadStore(ctrl)
		boxes.EXPECT().FindByIDs(ctx, []int64{1, 7, 9}).Return([]*queries.BoxTypeView{cube}, nil)

		_, err := queries.NewQuoteQueries(boxes).Calculate(ctx, []queries.QuoteItem{
			{BoxTypeID: 1, Quantity: 1},
			{BoxTypeID: 7, Quantity: 1},
			{BoxTypeID: 9, Quantity: 1},
			{BoxTypeID: 7, Quantity: 2},
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrBoxTypesNotFound))
		assert.Equal(t, map[string]string{"boxes": "BoxType(s) not found: 7, 9"}, errs.Fields(err))
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boxes := queriesmock.NewMockBoxReadStore(ctrl)

		_, err := queries.NewQuoteQueries(boxes).Calculate(ctx, nil)
		assert.Contains(t, errs.Fields(err), "boxes")
	})

	t.Run("rejects zero quantities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boxes := queriesmock.NewMockBoxReadStore(ctrl)
		boxes.EXPECT().FindByIDs(ctx, []int64{1}).Return([]*queries.BoxTypeView{cube}, nil)

		_, err := queries.NewQuoteQueries(boxes).Calculate(ctx, []queries.QuoteItem{{BoxTypeID: 1, Quantity: 0}})
		assert.Contains(t, errs.Fields(err), "quantity")
	})
}

// ================================================================================
// Bookings
// ================================================================================

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	t.Run("track joins the tracking history and hides contact details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		tracking := queriesmock.NewMockTrackingReadStore(ctrl)
		v := &queries.BookingView{
			ID:            uuid.New(), ReferenceCode: "ABCDE12345", BoxTypeName: "M", Quantity: 2,
			CustomerEmail: "ada@example.com", Status: "confirmed", CreatedAt: created,
		}
		history := []*queries.TrackingView{{ID: 1, BookingID: v.ID, Status: "Collected", Location: "Accra"}}
		store.EXPECT().FindByReferenceCode(ctx, "ABCDE12345").Return(v, nil)
		tracking.EXPECT().ListByBooking(ctx, v.ID).Return(history, nil)

		got, err := queries.NewBookingQueries(store, tracking).Track(ctx, "ABCDE12345")

		require.NoError(t, err)
		assert.Equal(t, "ABCDE12345", got.ReferenceCode)
		assert.Equal(t, "confirmed", got.Status)
		assert.Equal(t, history, got.Tracking)
	})

	t.Run("unknown reference code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByReferenceCode(ctx, "ZZZZZ99999").Return(nil, notFound())

		_, err := queries.NewBookingQueries(store, queriesmock.NewMockTrackingReadStore(ctrl)).Track(ctx, "ZZZZZ99999")
		assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
	})

	t.Run("list fetches one extra row to build the next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := []*queries.BookingView{
			{ID: uuid.New(), CreatedAt: created},
			{ID: uuid.New(), CreatedAt: created.Add(-time.Minute)},
			{ID: uuid.New(), CreatedAt: created.Add(-2 * time.Minute)},
		}
		filter := queries.BookingFilter{Status: "pending"}
		store.EXPECT().List(ctx, filter, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store, nil).List(ctx, filter, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("list passes the decoded keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		id := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(created, id)}
		store.EXPECT().List(ctx, queries.BookingFilter{}, gomock.Any(), int32(queries.DefaultListLimit+1)).
			DoAndReturn(func(_ context.Context, _ queries.BookingFilter, after *queries.Keyset, _ int32) ([]*queries.BookingView, error) {
				require.NotNil(t, after)
				assert.Equal(t, id, after.ID)
				assert.True(t, created.Equal(after.CreatedAt))
				return nil, nil
			})

		got, next, err := queries.NewBookingQueries(store, nil).List(ctx, queries.BookingFilter{}, cursor, 0)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("list rejects a bad cursor before querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store, nil).List(ctx, queries.BookingFilter{}, &queries.Cursor{After: "garbage"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})
}

// ================================================================================
// Referrals
// ================================================================================

func TestReferralQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the link and conversion rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReferralReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(&queries.ReferralView{
			ID: id, Code: "ABCDEF123456", TotalReferrals: 3, SuccessfulReferrals: 2,
		}, nil)

		v, err := queries.NewReferralQueries(store, "https://cargoghana.com/").GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "https://cargoghana.com/r/ABCDEF123456", v.ShareableLink)
		assert.Equal(t, "66.67", v.ConversionRate.StringFixed(2))
	})

	t.Run("no referrals means a zero rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReferralReadStore(ctrl)
		store.EXPECT().FindByCode(ctx, "ABCDEF123456").Return(&queries.ReferralView{Code: "ABCDEF123456"}, nil)

		v, err := queries.NewReferralQueries(store, "http://localhost:3000").GetByCode(ctx, "ABCDEF123456")

		require.NoError(t, err)
		assert.True(t, v.ConversionRate.IsZero())
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReferralReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := queries.NewReferralQueries(store, "").GetByID(ctx, id)
		assert.True(t, errs.Is(err, queries.ErrReferralNotFound))
	})
}
