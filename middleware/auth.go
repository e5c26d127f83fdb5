package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-backend/models"
	"travel-backend/utils"
)

const userContextKey = "currentUser"

// RequireAuth resolves the bearer token to a user and aborts with 401 when
// it is missing, unknown, or expired.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing_token")
			c.Abort()
			return
		}

		var session models.Session
		err := db.Preload("User").
			Where("token = ? AND (expires_at IS NULL OR expires_at > ?)", token, time.Now().UTC()).
			First(&session).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.JSONError(c, http.StatusUnauthorized, "invalid_or_expired_token")
			} else {
				utils.JSONError(c, http.StatusInternalServerError, "failed to validate session")
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, session.User)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present but lets
// anonymous requests through. Quotes work for guests; agent-only offers just
// never qualify for them.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		var session models.Session
		err := db.Preload("User").
			Where("token = ? AND (expires_at IS NULL OR expires_at > ?)", token, time.Now().UTC()).
			First(&session).Error
		if err == nil {
			c.Set(userContextKey, session.User)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth or
// OptionalAuth, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
