package referral

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CodeLength  = 12
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrInvalidEmail            = errors.New("invalid email format")
	ErrInvalidCode             = errors.New("referral code must be 12 characters A-Z or 0-9")
	ErrInvalidRewardStatus     = errors.New("reward status must be one of pending, approved, paid, rejected")
	ErrInvalidRewardTransition = errors.New("invalid reward status transition")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	baseReward       = decimal.NewFromInt(10)
	rewardPercentage = decimal.RequireFromString("0.05")
	hundred          = decimal.NewFromInt(100)
)

type RewardStatus string

const (
	RewardPending  RewardStatus = "pending"
	RewardApproved RewardStatus = "approved"
	RewardPaid     RewardStatus = "paid"
	RewardRejected RewardStatus = "rejected"
)

var rewardTransitions = map[RewardStatus][]RewardStatus{
	RewardPending:  {RewardApproved, RewardRejected},
	RewardApproved: {RewardPaid, RewardRejected},
}

func ParseRewardStatus(s string) (RewardStatus, error) {
	st := RewardStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case RewardPending, RewardApproved, RewardPaid, RewardRejected:
		return st, nil
	}
	return "", errs.Field("reward_status", ErrInvalidRewardStatus)
}

type Code struct {
	value string
}

func GenerateCode(r io.Reader) (Code, error) {
	if r == nil {
		r = rand.Reader
	}
	max := big.NewInt(int64(len(codeCharset)))
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(r, max)
		if err != nil {
			return Code{}, errs.Wrap(err, "failed to read random source")
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return Code{value: string(buf)}, nil
}

// ParseCode normalises user input; lookups are case-insensitive.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != CodeLength {
		return Code{}, errs.Field("referral_code", ErrInvalidCode)
	}
	for _, c := range s {
		if !strings.ContainsRune(codeCharset, c) {
			return Code{}, errs.Field("referral_code", ErrInvalidCode)
		}
	}
	return Code{value: s}, nil
}

func (c Code) String() string { return c.value }

type Referral struct {
	id                  uuid.UUID
	email               string
	code                Code
	referrerID          *uuid.UUID
	totalReferrals      int
	successfulReferrals int
	linkClicks          int
	lastClickedAt       *time.Time
	rewardAmount        decimal.Decimal
	rewardStatus        RewardStatus
	rewardUpdatedAt     time.Time
	totalRewardEarned   decimal.Decimal
	createdAt           time.Time
}

func NewReferral(email string, code Code, referrerID *uuid.UUID, now time.Time) (*Referral, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, errs.Field("email", ErrInvalidEmail)
	}
	if code.value == "" {
		return nil, ErrInvalidCode
	}
	return &Referral{
		id:                uuid.New(),
		email:             email,
		code:              code,
		referrerID:        referrerID,
		rewardAmount:      decimal.Zero,
		rewardStatus:      RewardPending,
		rewardUpdatedAt:   now,
		totalRewardEarned: decimal.Zero,
		createdAt:         now,
	}, nil
}

type Snapshot struct {
	ID                  uuid.UUID
	Email               string
	Code                string
	ReferrerID          *uuid.UUID
	TotalReferrals      int
	SuccessfulReferrals int
	LinkClicks          int
	LastClickedAt       *time.Time
	RewardAmount        decimal.Decimal
	RewardStatus        RewardStatus
	RewardUpdatedAt     time.Time
	TotalRewardEarned   decimal.Decimal
	CreatedAt           time.Time
}

func Reconstruct(s Snapshot) *Referral {
	return &Referral{
		id:                  s.ID,
		email:               s.Email,
		code:                Code{value: s.Code},
		referrerID:          s.ReferrerID,
		totalReferrals:      s.TotalReferrals,
		successfulReferrals: s.SuccessfulReferrals,
		linkClicks:          s.LinkClicks,
		lastClickedAt:       s.LastClickedAt,
		rewardAmount:        s.RewardAmount,
		rewardStatus:        s.RewardStatus,
		rewardUpdatedAt:     s.RewardUpdatedAt,
		totalRewardEarned:   s.TotalRewardEarned,
		createdAt:           s.CreatedAt,
	}
}

func (r *Referral) Snapshot() Snapshot {
	return Snapshot{
		ID:                  r.id,
		Email:               r.email,
		Code:                r.code.value,
		ReferrerID:          r.referrerID,
		TotalReferrals:      r.totalReferrals,
		SuccessfulReferrals: r.successfulReferrals,
		LinkClicks:          r.linkClicks,
		LastClickedAt:       r.lastClickedAt,
		RewardAmount:        r.rewardAmount,
		RewardStatus:        r.rewardStatus,
		RewardUpdatedAt:     r.rewardUpdatedAt,
		TotalRewardEarned:   r.totalRewardEarned,
		CreatedAt:           r.createdAt,
	}
}

func (r *Referral) ID() uuid.UUID                      { return r.id }
func (r *Referral) Email() string                      { return r.email }
func (r *Referral) Code() Code                         { return r.code }
func (r *Referral) TotalReferrals() int                { return r.totalReferrals }
func (r *Referral) SuccessfulReferrals() int           { return r.successfulReferrals }
func (r *Referral) LinkClicks() int                    { return r.linkClicks }
func (r *Referral) LastClickedAt() *time.Time          { return r.lastClickedAt }
func (r *Referral) RewardAmount() decimal.Decimal      { return r.rewardAmount }
func (r *Referral) RewardStatus() RewardStatus         { return r.rewardStatus }
func (r *Referral) TotalRewardEarned() decimal.Decimal { return r.totalRewardEarned }

func (r *Referral) TrackClick(now time.Time) {
	r.linkClicks++
	r.lastClickedAt = &now
}

// TrackSuccessfulReferral credits the referrer for a booking of the given cost
// and returns the reward added.
func (r *Referral) TrackSuccessfulReferral(bookingCost decimal.Decimal, now time.Time) decimal.Decimal {
	reward := CalculateReward(bookingCost)
	r.successfulReferrals++
	r.totalReferrals++
	r.rewardAmount = r.rewardAmount.Add(reward)
	r.totalRewardEarned = r.totalRewardEarned.Add(reward)
	r.rewardUpdatedAt = now
	return reward
}

func (r *Referral) ChangeRewardStatus(next RewardStatus, now time.Time) error {
	for _, allowed := range rewardTransitions[r.rewardStatus] {
		if allowed == next {
			r.rewardStatus = next
			r.rewardUpdatedAt = now
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidRewardTransition, r.rewardStatus, next)
}

// CalculateReward is 10 plus 5% of the booking cost, rounded to 2dp.
func CalculateReward(bookingCost decimal.Decimal) decimal.Decimal {
	return baseReward.Add(bookingCost.Mul(rewardPercentage)).Round(2)
}

// ConversionRate is successful/total as a percentage; zero when nothing was referred.
func ConversionRate(successful, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(successful)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2)
}

func ShareableLink(siteURL string, code string) string {
	return strings.TrimRight(siteURL, "/") + "/r/" + code
}
