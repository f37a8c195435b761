package request

import "github.com/google/uuid"

type CreateReferralRequest struct {
	Email      string     `json:"email" binding:"required"`
	ReferrerID *uuid.UUID `json:"referrer_id,omitempty"`
}

type UpdateRewardStatusRequest struct {
	RewardStatus string `json:"reward_status" binding:"required"`
}
