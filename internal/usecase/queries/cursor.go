package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	return encodeCursor(t, id.String())
}

// EncodeAfterSeqCursor is the bigserial-keyed variant.
func EncodeAfterSeqCursor(t time.Time, seq int64) string {
	return encodeCursor(t, strconv.FormatInt(seq, 10))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	t, key, err := decodeCursor(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}
	return t, id, nil
}

func DecodeAfterSeqCursor(cursor string) (time.Time, int64, error) {
	t, key, err := decodeCursor(cursor)
	if err != nil {
		return time.Time{}, 0, err
	}
	seq, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid sequence: %w", err)
	}
	return t, seq, nil
}

func encodeCursor(t time.Time, key string) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), key)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func decodeCursor(cursor string) (time.Time, string, error) {
	if cursor == "" {
		return time.Time{}, "", fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, "", fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid cursor format: expected '<micros>-<key>'")
	}
	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid timestamp: %w", err)
	}
	return time.UnixMicro(micros), parts[1], nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) IsFirstPage() bool {
	return c == nil || c.After == ""
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Page trims rows fetched with limit+1 and builds the cursor for the next page.
func Page[T any](rows []T, limit int, cursorOf func(T) string) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	return rows, &Cursor{After: cursorOf(rows[limit-1])}
}

// Keyset is the decoded position of a uuid-keyed cursor.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type SeqKeyset struct {
	CreatedAt time.Time
	ID        int64
}

// DecodeKeyset returns nil for the first page.
func DecodeKeyset(c *Cursor) (*Keyset, error) {
	if c.IsFirstPage() {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}
	return &Keyset{CreatedAt: t, ID: id}, nil
}

func DecodeSeqKeyset(c *Cursor) (*SeqKeyset, error) {
	if c.IsFirstPage() {
		return nil, nil
	}
	t, id, err := DecodeAfterSeqCursor(c.After)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}
	return &SeqKeyset{CreatedAt: t, ID: id}, nil
}
