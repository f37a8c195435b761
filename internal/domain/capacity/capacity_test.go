//go:build unit

package capacity_test

import (
	"testing"

	"cargo-consolidation/internal/domain/capacity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotalVolume(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.True(t, capacity.TotalVolume(nil).IsZero())
	})

	t.Run("sums box volume times quantity exactly", func(t *testing.T) {
		lines := []capacity.Line{
			{BoxVolume: d("0.009"), Quantity: 3},
			{BoxVolume: d("0.0405"), Quantity: 2},
			{BoxVolume: d("0.324"), Quantity: 1},
		}
		assert.Equal(t, "0.432", capacity.TotalVolume(lines).String())
	})

	t.Run("order independent", func(t *testing.T) {
		a := []capacity.Line{{BoxVolume: d("0.1"), Quantity: 3}, {BoxVolume: d("0.2"), Quantity: 1}}
		b := []capacity.Line{{BoxVolume: d("0.2"), Quantity: 1}, {BoxVolume: d("0.1"), Quantity: 3}}
		assert.True(t, capacity.TotalVolume(a).Equal(capacity.TotalVolume(b)))
		assert.Equal(t, "0.5", capacity.TotalVolume(a).String())
	})
}

func TestNewProgress(t *testing.T) {
	cases := []struct {
		name        string
		total, goal string
		wantPercent string
		wantTotal   string
	}{
		{"nine cubic metres", "9", "66.16", "13.6", "9"},
		{"rounds total", "16.5449", "66.16", "25.01", "16.54"},
		{"capped at one hundred", "80", "66.16", "100", "80"},
		{"exactly full", "66.16", "66.16", "100", "66.16"},
		{"zero goal", "5", "0", "0", "5"},
		{"negative goal", "5", "-1", "0", "5"},
		{"empty container", "0", "66.16", "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := capacity.NewProgress(d(c.total), d(c.goal))
			assert.True(t, d(c.wantPercent).Equal(p.Percent), "percent %s", p.Percent)
			assert.True(t, d(c.wantTotal).Equal(p.TotalVolume), "total %s", p.TotalVolume)
		})
	}
}

func TestMilestones(t *testing.T) {
	ms := capacity.Milestones(capacity.Capacity)
	require.Len(t, ms, 3)
	assert.Equal(t, "16.54", ms[0].Threshold.StringFixed(2))
	assert.Equal(t, "33.08", ms[1].Threshold.StringFixed(2))
	assert.Equal(t, "49.62", ms[2].Threshold.StringFixed(2))
	assert.Equal(t, []int{25, 50, 75}, []int{ms[0].Percent, ms[1].Percent, ms[2].Percent})
}

func TestReachedMilestones(t *testing.T) {
	cases := []struct {
		name  string
		total string
		want  []int
	}{
		{"at threshold", "16.54", []int{25}},
		{"upper band edge inclusive", "16.55", []int{25}},
		{"lower band edge exclusive", "16.53", nil},
		{"just above lower edge", "16.531", []int{25}},
		{"above band", "16.56", nil},
		{"fifty percent", "33.08", []int{50}},
		{"seventy five percent", "49.63", []int{75}},
		{"between milestones", "40", nil},
		{"empty", "0", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got []int
			for _, m := range capacity.ReachedMilestones(d(c.total), capacity.Capacity) {
				got = append(got, m.Percent)
			}
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("repeat calls fire again", func(t *testing.T) {
		first := capacity.ReachedMilestones(d("33.08"), capacity.Capacity)
		second := capacity.ReachedMilestones(d("33.08"), capacity.Capacity)
		assert.Equal(t, first, second)
		assert.Len(t, second, 1)
	})
}

func TestDispatchReadiness(t *testing.T) {
	assert.True(t, capacity.IsDispatchReady(d("66.16"), capacity.Capacity))
	assert.True(t, capacity.IsDispatchReady(d("70"), capacity.Capacity))
	assert.False(t, capacity.IsDispatchReady(d("66.15"), capacity.Capacity))

	assert.Equal(t, "57.16", capacity.Remaining(d("9"), capacity.Capacity).StringFixed(2))
	assert.True(t, capacity.Remaining(d("70"), capacity.Capacity).IsZero())
}
