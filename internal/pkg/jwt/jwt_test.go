//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-cargo-consolidation"

var issuedAt = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func newService(opts jwt.Options, clk clock.Clock) *jwt.Service {
	if opts.Secret == "" {
		opts.Secret = secret
	}
	if opts.TTL == 0 {
		opts.TTL = time.Hour
	}
	return jwt.NewService(opts, clk)
}

func TestService(t *testing.T) {
	t.Run("round trip keeps user and role", func(t *testing.T) {
		svc := newService(jwt.Options{Issuer: "cargo"}, clock.NewMockClock(issuedAt))
		id := uuid.New()

		token, err := svc.Issue(id, user.RoleStaff)
		require.NoError(t, err)

		claims, err := svc.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID())
		assert.Equal(t, user.RoleStaff, claims.Role)
		assert.Equal(t, "cargo", claims.Issuer)
	})

	t.Run("expiry follows the injected clock", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(jwt.Options{}, clk)
		token, err := svc.Issue(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.Parse(token)

		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
		assert.False(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("leeway tolerates small drift", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(jwt.Options{Leeway: time.Minute}, clk)
		token, err := svc.Issue(uuid.New(), user.RoleCustomer)
		require.NoError(t, err)

		clk.Add(time.Hour + 30*time.Second)
		_, err = svc.Parse(token)
		assert.NoError(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		token, err := newService(jwt.Options{Secret: "other"}, clk).Issue(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = newService(jwt.Options{}, clk).Parse(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		token, err := newService(jwt.Options{Issuer: "someone-else"}, clk).Issue(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = newService(jwt.Options{Issuer: "cargo"}, clk).Parse(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		claims := jwt.Claims{Role: user.RoleAdmin}
		claims.Subject = uuid.NewString()
		claims.ExpiresAt = gojwt.NewNumericDate(issuedAt.Add(time.Hour))
		s, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newService(jwt.Options{}, clock.NewMockClock(issuedAt)).Parse(s)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("tokens without expiry are rejected", func(t *testing.T) {
		claims := jwt.Claims{Role: user.RoleAdmin}
		claims.Subject = uuid.NewString()
		s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = newService(jwt.Options{}, clock.NewMockClock(issuedAt)).Parse(s)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("malformed subject has no user id", func(t *testing.T) {
		c := jwt.Claims{}
		c.Subject = "not-a-uuid"
		assert.Equal(t, uuid.Nil, c.UserID())
	})
}
