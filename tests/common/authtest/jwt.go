//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints bearer tokens the way the identity service does.
type JWTHelper struct {
	opts jwt.Options
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{opts: jwt.Options{Secret: cfg.Secret, Issuer: cfg.Issuer, TTL: cfg.TTL}}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, h.opts, time.Now(), userID, role)
}

func (h *JWTHelper) StaffToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), user.RoleStaff)
}

func (h *JWTHelper) CustomerToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), user.RoleCustomer)
}

// CreateExpiredToken backdates issuance so the token expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	opts := h.opts
	opts.TTL = time.Minute
	return h.issue(t, opts, time.Now().Add(-2*time.Minute), userID, role)
}

func (h *JWTHelper) issue(t *testing.T, opts jwt.Options, at time.Time, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(opts, clock.NewMockClock(at)).Issue(userID, role)
	require.NoError(t, err)
	return token
}
