package agent

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength       = 100
	MaxPhoneLength      = 20
	MaxCompanyLength    = 100
	MaxExperienceLength = 5000
	MaxAdminNotesLength = 5000
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("phone must be 7-20 digits, optionally with +, spaces or dashes")
	ErrCompanyTooLong    = errors.New("company exceeds maximum length")
	ErrExperienceTooLong = errors.New("experience exceeds maximum length")
	ErrNotesTooLong      = errors.New("admin notes exceed maximum length")
	ErrInvalidStatus     = errors.New("status must be one of pending, under_review, approved, rejected")
	ErrInvalidTransition = errors.New("invalid application status transition")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusPending:     {StatusUnderReview, StatusApproved, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", errs.Field("status", ErrInvalidStatus)
}

type Application struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Company     string
	Experience  string
	Status      Status
	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ReviewedBy  *uuid.UUID
	AdminNotes  string
}

func NewApplication(name, email, phone, company, experience string, now time.Time) (*Application, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Field("name", ErrEmptyName)
	}
	if len(name) > MaxNameLength {
		return nil, errs.Field("name", ErrNameTooLong)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, errs.Field("email", ErrInvalidEmail)
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > MaxPhoneLength || !phoneRegex.MatchString(phone) {
		return nil, errs.Field("phone", ErrInvalidPhone)
	}
	company = strings.TrimSpace(company)
	if len(company) > MaxCompanyLength {
		return nil, errs.Field("company", ErrCompanyTooLong)
	}
	experience = strings.TrimSpace(experience)
	if len(experience) > MaxExperienceLength {
		return nil, errs.Field("experience", ErrExperienceTooLong)
	}

	return &Application{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Company:     company,
		Experience:  experience,
		Status:      StatusPending,
		SubmittedAt: now,
	}, nil
}

// Review records a staff decision. Approved and rejected are terminal.
func (a *Application) Review(next Status, reviewer uuid.UUID, notes string, now time.Time) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxAdminNotesLength {
		return errs.Field("admin_notes", ErrNotesTooLong)
	}
	allowed := false
	for _, s := range transitions[a.Status] {
		if s == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	a.ReviewedAt = &now
	a.ReviewedBy = &reviewer
	if notes != "" {
		a.AdminNotes = notes
	}
	return nil
}
