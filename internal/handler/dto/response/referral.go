package response

import (
	"time"

	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReferralResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Code                string     `json:"code"`
	TotalReferrals      int        `json:"total_referrals"`
	SuccessfulReferrals int        `json:"successful_referrals"`
	LinkClicks          int        `json:"link_clicks"`
	LastClickedAt       *time.Time `json:"last_clicked_at,omitempty"`
	RewardAmount        string     `json:"reward_amount"`
	RewardStatus        string     `json:"reward_status"`
	TotalRewardEarned   string     `json:"total_reward_earned"`
	ShareableLink       string     `json:"shareable_link"`
	ConversionRate      string     `json:"conversion_rate"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromReferralView(v *queries.ReferralView) (*ReferralResponse, error) {
	return mapInto[ReferralResponse](v)
}

func FromReferralList(items []*queries.ReferralView) ([]*ReferralResponse, error) {
	return mapList[ReferralResponse](items)
}
