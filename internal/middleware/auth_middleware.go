package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the authenticated user's
// id (equal to the bearer token) is stored.
const UserIDKey = "userID"

// BearerAuth extracts the bearer token from the Authorization header
// and resolves it against the identity store. Requests with a missing,
// malformed, or unknown token are rejected with 401 before any handler
// runs. Only the two-part "<scheme> <token>" header shape is accepted.
func BearerAuth(users repository.UserRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := users.GetByToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve token"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
