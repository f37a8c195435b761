package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger.With("component", "auth"),
	}
}

// OptionalAuth authenticates the request if a valid bearer token is present.
// A missing or invalid token leaves the request anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		p, err := m.tokenValidator.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.logger.WarnContext(c.Request.Context(), "ignoring invalid bearer token", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, p.UserID)
		c.Set(ctxUserRoleKey, p.Role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after OptionalAuth. Anonymous callers and
// callers below minRole both get 403.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Authentication credentials were not provided", nil)
			return
		}
		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
