package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"car-market-backend/internal/auth"
	"car-market-backend/internal/models"
)

// AuthMiddleware gates intake behind a bearer credential. The original
// producer sends "Authorization: Bearer <key>"; a wrong or absent key is a
// 403 so the producer can tell a credential problem from a payload problem.
func AuthMiddleware(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "invalid authorization header format"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(parts[1])
		if err := authenticator.Authenticate(token); err != nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "invalid api key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
