//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	at := time.Date(2025, 1, 6, 9, 0, 0, 123456000, time.UTC)

	t.Run("uuid round trip keeps microseconds", func(t *testing.T) {
		id := uuid.New()
		gotT, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.True(t, at.Equal(gotT))
		assert.Equal(t, id, gotID)
	})

	t.Run("sequence round trip", func(t *testing.T) {
		gotT, seq, err := queries.DecodeAfterSeqCursor(queries.EncodeAfterSeqCursor(at, 42))
		require.NoError(t, err)
		assert.True(t, at.Equal(gotT))
		assert.Equal(t, int64(42), seq)
	})

	t.Run("rejects malformed cursors", func(t *testing.T) {
		bad := []string{
			"",
			"!!!",
			base64.URLEncoding.EncodeToString([]byte("v2:1-abc")),
			base64.URLEncoding.EncodeToString([]byte("v1:notanumber-" + uuid.NewString())),
			base64.URLEncoding.EncodeToString([]byte("v1:123")),
		}
		for _, c := range bad {
			_, _, err := queries.DecodeAfterCursor(c)
			assert.Error(t, err, c)
		}
		_, _, err := queries.DecodeAfterSeqCursor(queries.EncodeAfterCursor(at, uuid.New()))
		assert.Error(t, err)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}

func TestPage(t *testing.T) {
	key := func(n int) string { return string(rune('a' + n)) }

	rows, next := queries.Page([]int{0, 1, 2}, 3, key)
	assert.Equal(t, []int{0, 1, 2}, rows)
	assert.Nil(t, next)

	rows, next = queries.Page([]int{0, 1, 2, 3}, 3, key)
	assert.Equal(t, []int{0, 1, 2}, rows)
	require.NotNil(t, next)
	assert.Equal(t, "c", next.After)

	assert.True(t, (*queries.Cursor)(nil).IsFirstPage())
	assert.True(t, (&queries.Cursor{}).IsFirstPage())
}
