//go:build unit

package api_test

import (
	"cargo-consolidation/internal/domain/user"
	"cargo-consolidation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for OptionalAuth: any bearer token authenticates as the
// given user. Role checks are covered by the middleware tests.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
			c.Set("user_role", role)
		}
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	return gin.New()
}
