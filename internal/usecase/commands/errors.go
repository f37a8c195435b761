package commands

import "cargo-consolidation/internal/pkg/errs"

var (
	ErrBoxTypeNotFound         = errs.New("box type not found")
	ErrDuplicateBoxType        = errs.New("a box type with this name already exists")
	ErrUnknownReferralCode     = errs.New("referral code not found")
	ErrReferralNotFound        = errs.New("referral not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrApplicationNotFound     = errs.New("agent application not found")
	ErrTemplateNotFound        = errs.New("notification template not found")
	ErrDuplicateTemplateName   = errs.New("a template with this name already exists")
	ErrBatchNotFound           = errs.New("container batch not found")
	ErrScheduleNotFound        = errs.New("periodic task not found")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrReferralCodeExhausted   = errs.New("could not allocate a unique referral code")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
