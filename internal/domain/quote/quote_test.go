//go:build unit

package quote_test

import (
	"testing"

	"cargo-consolidation/internal/domain/quote"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestTierFor(t *testing.T) {
	cases := map[int]string{0: "standard", 9: "standard", 10: "bronze", 24: "bronze", 25: "silver", 49: "silver", 50: "gold", 500: "gold"}
	for boxes, want := range cases {
		assert.Equal(t, want, quote.TierFor(boxes).Name, "boxes=%d", boxes)
	}
}

func TestCalculate(t *testing.T) {
	t.Run("standard tier", func(t *testing.T) {
		q, err := quote.Calculate([]quote.Item{{BoxVolume: decimal.NewFromInt(1), PricePerBox: decimal.NewFromInt(50), Quantity: 4}})
		require.NoError(t, err)
		assert.Equal(t, "4.00", q.TotalVolume.StringFixed(2))
		assert.Equal(t, "200.00", q.Subtotal.StringFixed(2))
		assert.Equal(t, "standard", q.Tier)
		assert.True(t, q.Discount.IsZero())
		assert.Equal(t, "200.00", q.TotalCost.StringFixed(2))
	})

	t.Run("cost follows the per-box price, not the volume", func(t *testing.T) {
		price := decimal.RequireFromString("50.00")
		small, err := quote.Calculate([]quote.Item{{BoxVolume: decimal.RequireFromString("0.009"), PricePerBox: price, Quantity: 2}})
		require.NoError(t, err)
		large, err := quote.Calculate([]quote.Item{{BoxVolume: decimal.NewFromInt(1), PricePerBox: price, Quantity: 2}})
		require.NoError(t, err)

		assert.Equal(t, "100.00", small.TotalCost.StringFixed(2))
		assert.Equal(t, "100.00", large.TotalCost.StringFixed(2))
		assert.False(t, small.TotalVolume.Equal(large.TotalVolume))
	})

	t.Run("bronze tier over mixed boxes", func(t *testing.T) {
		q, err := quote.Calculate([]quote.Item{
			{BoxVolume: decimal.RequireFromString("0.009"), PricePerBox: decimal.RequireFromString("50.00"), Quantity: 6},
			{BoxVolume: decimal.RequireFromString("0.0405"), PricePerBox: decimal.RequireFromString("100.00"), Quantity: 4},
		})
		require.NoError(t, err)
		// 6 x 50 + 4 x 100 = 700 GHS
		assert.Equal(t, 10, q.TotalBoxes)
		assert.Equal(t, "0.22", q.TotalVolume.StringFixed(2))
		assert.Equal(t, "700.00", q.Subtotal.StringFixed(2))
		assert.Equal(t, "bronze", q.Tier)
		assert.Equal(t, "35.00", q.Discount.StringFixed(2))
		assert.Equal(t, "665.00", q.TotalCost.StringFixed(2))
	})

	t.Run("gold tier", func(t *testing.T) {
		q, err := quote.Calculate([]quote.Item{{
			BoxVolume:   decimal.RequireFromString("0.324"),
			PricePerBox: decimal.RequireFromString("400.00"),
			Quantity:    50,
		}})
		require.NoError(t, err)

		want := quote.Quote{
			TotalVolume:     decimal.RequireFromString("16.2"),
			TotalBoxes:      50,
			Subtotal:        decimal.NewFromInt(20000),
			Tier:            "gold",
			DiscountPercent: decimal.NewFromInt(15),
			Discount:        decimal.NewFromInt(3000),
			TotalCost:       decimal.NewFromInt(17000),
		}
		if diff := cmp.Diff(want, q, decimalEqual); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := quote.Calculate(nil)
		require.ErrorIs(t, err, quote.ErrNoItems)
		assert.Contains(t, errs.Fields(err), "boxes")
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := quote.Calculate([]quote.Item{{BoxVolume: decimal.NewFromInt(1), Quantity: 0}})
		assert.ErrorIs(t, err, quote.ErrInvalidQuantity)
	})
}
