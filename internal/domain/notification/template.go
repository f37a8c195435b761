package notification

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"
)

const (
	MaxTemplateNameLength = 100
	MaxSubjectLength      = 200
)

// Template names the service dispatches.
const (
	TemplateBookingConfirmationEmail    = "booking_confirmation_email"
	TemplateBookingConfirmationWhatsApp = "booking_confirmation_whatsapp"
	TemplateMilestoneReached            = "milestone_reached"
	TemplateDispatchReady               = "dispatch_ready"
	TemplateDispatchReadyWhatsApp       = "dispatch_ready_whatsapp"
)

var (
	ErrInvalidChannel      = errors.New("channel must be email or whatsapp")
	ErrEmptyTemplateName   = errors.New("template name cannot be empty")
	ErrTemplateNameTooLong = errors.New("template name exceeds maximum length")
	ErrInvalidTemplateName = errors.New("template name may contain only lower case letters, digits and underscores")
	ErrSubjectRequired     = errors.New("subject is required for email templates")
	ErrSubjectTooLong      = errors.New("subject exceeds maximum length")
	ErrEmptyBody           = errors.New("template body cannot be empty")
	ErrTemplateInactive    = errors.New("template is not active")
	ErrChannelMismatch     = errors.New("template channel does not match")

	placeholderRegex  = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)
	templateNameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
)

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

func ParseChannel(s string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ChannelEmail, ChannelWhatsApp:
		return c, nil
	}
	return "", errs.Field("channel", ErrInvalidChannel)
}

func (c Channel) String() string { return string(c) }

type Template struct {
	id          int64
	name        string
	description string
	subject     string
	body        string
	channel     Channel
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTemplate(name, description, subject, body string, channel Channel, isActive bool, now time.Time) (*Template, error) {
	t := &Template{createdAt: now}
	if err := t.apply(name, description, subject, body, channel, isActive, now); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructTemplate(id int64, name, description, subject, body string, channel Channel, isActive bool, createdAt, updatedAt time.Time) *Template {
	return &Template{
		id:          id,
		name:        name,
		description: description,
		subject:     subject,
		body:        body,
		channel:     channel,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces every editable field; on error the template is unchanged.
func (t *Template) Update(name, description, subject, body string, channel Channel, isActive bool, now time.Time) error {
	next := *t
	if err := next.apply(name, description, subject, body, channel, isActive, now); err != nil {
		return err
	}
	*t = next
	return nil
}

func (t *Template) apply(name, description, subject, body string, channel Channel, isActive bool, now time.Time) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return errs.Field("name", ErrEmptyTemplateName)
	case len(name) > MaxTemplateNameLength:
		return errs.Field("name", ErrTemplateNameTooLong)
	case !templateNameRegex.MatchString(name):
		return errs.Field("name", ErrInvalidTemplateName)
	}
	if _, err := ParseChannel(string(channel)); err != nil {
		return err
	}
	subject = strings.TrimSpace(subject)
	if channel == ChannelEmail && subject == "" {
		return errs.Field("subject", ErrSubjectRequired)
	}
	if len(subject) > MaxSubjectLength {
		return errs.Field("subject", ErrSubjectTooLong)
	}
	if strings.TrimSpace(body) == "" {
		return errs.Field("body", ErrEmptyBody)
	}

	t.name = name
	t.description = strings.TrimSpace(description)
	t.subject = subject
	t.body = body
	t.channel = channel
	t.isActive = isActive
	t.updatedAt = now
	return nil
}

func (t *Template) ID() int64            { return t.id }
func (t *Template) Name() string         { return t.name }
func (t *Template) Description() string  { return t.description }
func (t *Template) Subject() string      { return t.subject }
func (t *Template) Body() string         { return t.body }
func (t *Template) Channel() Channel     { return t.channel }
func (t *Template) IsActive() bool       { return t.isActive }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

// CheckUsable rejects inactive templates and templates for another channel.
func (t *Template) CheckUsable(channel Channel) error {
	if !t.isActive {
		return fmt.Errorf("%w: %s", ErrTemplateInactive, t.name)
	}
	if t.channel != channel {
		return fmt.Errorf("%w: %s is %s, not %s", ErrChannelMismatch, t.name, t.channel, channel)
	}
	return nil
}

// Message is a rendered template ready for a channel sender.
type Message struct {
	Channel   Channel
	Recipient string
	Subject   string
	Body      string
}

func (t *Template) Render(recipient string, vars map[string]string) Message {
	return Message{
		Channel:   t.channel,
		Recipient: recipient,
		Subject:   Render(t.subject, vars),
		Body:      Render(t.body, vars),
	}
}

// Render substitutes {{ name }} placeholders. Unknown names become empty.
func Render(text string, vars map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(text, func(m string) string {
		key := placeholderRegex.FindStringSubmatch(m)[1]
		return vars[key]
	})
}

// Placeholders lists variable names in first-seen order.
func Placeholders(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range placeholderRegex.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}
