//go:build unit

package referral_test

import (
	"bytes"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func newReferral(t *testing.T) *referral.Referral {
	t.Helper()
	code, err := referral.ParseCode("abcdef123456")
	require.NoError(t, err)
	r, err := referral.NewReferral(" Kofi@Example.com ", code, nil, now)
	require.NoError(t, err)
	return r
}

func TestNewReferral(t *testing.T) {
	r := newReferral(t)
	assert.Equal(t, "kofi@example.com", r.Email())
	assert.Equal(t, "ABCDEF123456", r.Code().String())
	assert.Equal(t, referral.RewardPending, r.RewardStatus())
	assert.True(t, r.RewardAmount().IsZero())

	t.Run("invalid email", func(t *testing.T) {
		code, _ := referral.GenerateCode(nil)
		_, err := referral.NewReferral("nope", code, nil, now)
		require.ErrorIs(t, err, referral.ErrInvalidEmail)
		assert.Contains(t, errs.Fields(err), "email")
	})
}

func TestCode(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		c, err := referral.GenerateCode(nil)
		require.NoError(t, err)
		assert.Len(t, c.String(), referral.CodeLength)
		_, err = referral.ParseCode(c.String())
		assert.NoError(t, err)
	})

	t.Run("deterministic source", func(t *testing.T) {
		c, err := referral.GenerateCode(bytes.NewReader(bytes.Repeat([]byte{0}, 32)))
		require.NoError(t, err)
		assert.Equal(t, "AAAAAAAAAAAA", c.String())
	})

	t.Run("parse rejects bad input", func(t *testing.T) {
		for _, bad := range []string{"", "SHORT", "ABCDEF1234567", "ABCDEF12345!"} {
			_, err := referral.ParseCode(bad)
			assert.ErrorIs(t, err, referral.ErrInvalidCode, bad)
		}
	})
}

func TestTracking(t *testing.T) {
	r := newReferral(t)

	r.TrackClick(now)
	r.TrackClick(now.Add(time.Minute))
	assert.Equal(t, 2, r.LinkClicks())
	assert.Equal(t, now.Add(time.Minute), *r.LastClickedAt())

	reward := r.TrackSuccessfulReferral(decimal.RequireFromString("1814.64"), now)
	assert.Equal(t, "100.73", reward.StringFixed(2))
	r.TrackSuccessfulReferral(decimal.RequireFromString("100"), now)

	assert.Equal(t, 2, r.SuccessfulReferrals())
	assert.Equal(t, 2, r.TotalReferrals())
	assert.Equal(t, "115.73", r.RewardAmount().StringFixed(2))
	assert.Equal(t, "115.73", r.TotalRewardEarned().StringFixed(2))
}

func TestCalculateReward(t *testing.T) {
	cases := map[string]string{
		"0":       "10.00",
		"100":     "15.00",
		"1814.64": "100.73",
		"4.08":    "10.20",
	}
	for cost, want := range cases {
		assert.Equal(t, want, referral.CalculateReward(decimal.RequireFromString(cost)).StringFixed(2), cost)
	}
}

func TestConversionRate(t *testing.T) {
	assert.True(t, referral.ConversionRate(0, 0).IsZero())
	assert.Equal(t, "66.67", referral.ConversionRate(2, 3).StringFixed(2))
	assert.Equal(t, "100.00", referral.ConversionRate(4, 4).StringFixed(2))
}

func TestShareableLink(t *testing.T) {
	assert.Equal(t, "https://cargoghana.com/r/ABCDEF123456", referral.ShareableLink("https://cargoghana.com/", "ABCDEF123456"))
	assert.Equal(t, "http://localhost:3000/r/X", referral.ShareableLink("http://localhost:3000", "X"))
}

func TestChangeRewardStatus(t *testing.T) {
	cases := []struct {
		name string
		path []referral.RewardStatus
		ok   bool
	}{
		{"approve then pay", []referral.RewardStatus{referral.RewardApproved, referral.RewardPaid}, true},
		{"reject pending", []referral.RewardStatus{referral.RewardRejected}, true},
		{"reject approved", []referral.RewardStatus{referral.RewardApproved, referral.RewardRejected}, true},
		{"pay without approval", []referral.RewardStatus{referral.RewardPaid}, false},
		{"paid is terminal", []referral.RewardStatus{referral.RewardApproved, referral.RewardPaid, referral.RewardRejected}, false},
		{"back to pending", []referral.RewardStatus{referral.RewardApproved, referral.RewardPending}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newReferral(t)
			var err error
			for _, st := range c.path {
				if err = r.ChangeRewardStatus(st, now); err != nil {
					break
				}
			}
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.path[len(c.path)-1], r.RewardStatus())
			} else {
				assert.ErrorIs(t, err, referral.ErrInvalidRewardTransition)
			}
		})
	}

	t.Run("parse", func(t *testing.T) {
		st, err := referral.ParseRewardStatus(" Approved ")
		require.NoError(t, err)
		assert.Equal(t, referral.RewardApproved, st)
		_, err = referral.ParseRewardStatus("void")
		assert.ErrorIs(t, err, referral.ErrInvalidRewardStatus)
	})
}
