package middleware

import (
	"github.com/gin-gonic/gin"

	"storefront/api/internal/config"
	"storefront/api/internal/models"
	"storefront/api/internal/repository"
	"storefront/api/internal/security"
)

const (
	sessionCookieName = "token"
	currentUserKey    = "current_user"
)

// Session resolves the `token` cookie into the current user. Requests with a
// missing, invalid or stale token proceed anonymously; resolvers decide
// whether authentication is required.
func Session(cfg *config.AppConfig, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := security.ParseSessionToken(token, cfg.Security.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the Session middleware resolved, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(models.User)
	if !ok {
		return nil
	}
	return &user
}
