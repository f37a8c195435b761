//go:build unit

package tracking_test

import (
	"strings"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/tracking"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	cases := []struct {
		name      string
		bookingID uuid.UUID
		status    string
		location  string
		errIs     error
		wantField string
	}{
		{name: "valid", bookingID: id, status: " In Transit ", location: "Tema Port"},
		{name: "max lengths", bookingID: id, status: strings.Repeat("s", 50), location: strings.Repeat("l", 100)},
		{name: "missing booking", bookingID: uuid.Nil, status: "x", location: "y", errIs: tracking.ErrMissingBookingID, wantField: "booking_id"},
		{name: "empty status", bookingID: id, status: "", location: "y", errIs: tracking.ErrEmptyStatus, wantField: "status"},
		{name: "long status", bookingID: id, status: strings.Repeat("s", 51), location: "y", errIs: tracking.ErrStatusTooLong, wantField: "status"},
		{name: "empty location", bookingID: id, status: "x", location: " ", errIs: tracking.ErrEmptyLocation, wantField: "location"},
		{name: "long location", bookingID: id, status: "x", location: strings.Repeat("l", 101), errIs: tracking.ErrLocationTooLong, wantField: "location"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := tracking.NewRecord(c.bookingID, c.status, c.location, now)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(c.status), r.Status)
				assert.Equal(t, now, r.Timestamp)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Contains(t, errs.Fields(err), c.wantField)
		})
	}
}
