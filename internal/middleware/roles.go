package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// RequireRole rejects tokens whose role does not match the endpoint group.
// It runs after JWT, so absent claims mean a wiring mistake and read as
// unauthorized rather than forbidden.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, ""))
			c.Abort()
			return
		}

		claims, ok := value.(*models.AuthClaims)
		if !ok || claims.Role != role {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, ""))
			c.Abort()
			return
		}

		c.Next()
	}
}
