package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches sentinels attached with Mark, which the standard library
// errors.Is does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// FieldError ties a validation failure to the request field that caused it.
type FieldError struct {
	Field  string
	Reason string
	cause  error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.cause
}

// Field attaches a field name to err; Is still matches the original sentinel.
func Field(field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: field, Reason: err.Error(), cause: err}
}

// Fields collects field reasons from err, or nil when it carries none.
func Fields(err error) map[string]string {
	var fe *FieldError
	if !cr.As(err, &fe) {
		return nil
	}
	return map[string]string{fe.Field: fe.Reason}
}
