package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "poolbook/internal/errors"
)

// UserScope returns a Gin middleware that resolves the acting user from the
// X-User-ID header (or a user_id query parameter as a fallback) and stores it
// on the context for handlers. The service carries no authentication; callers
// are trusted to identify themselves and this middleware only enforces that
// a well-formed user ID is present on every user-scoped route.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			raw = c.Query("user_id")
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(apperrors.ErrMissingUserScope.StatusCode, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrMissingUserScope.Code,
					"message": apperrors.ErrMissingUserScope.Message,
				},
			})
			return
		}

		c.Set("userID", uint(id))
		c.Next()
	}
}
