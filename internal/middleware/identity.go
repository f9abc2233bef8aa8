package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

const userIDContextKey = "gamewell.user_id"

// IdentityMiddleware resolves the acting user from the X-User-ID header.
// Full session mechanics live in front of this service; downstream handlers
// only need a stable user id.
type IdentityMiddleware struct {
	log *logger.Logger
}

func NewIdentityMiddleware(baseLog *logger.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{log: baseLog.With("middleware", "IdentityMiddleware")}
}

func (im *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID is not a valid uuid"})
			return
		}
		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// UserID returns the user resolved by RequireUser.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(userIDContextKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
