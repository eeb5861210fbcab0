package middleware

import (
	"net/http"
	"net/url"

	"schoolsite/config"
	"schoolsite/internal/auth"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"

	"github.com/gin-gonic/gin"
)

// SessionRequired validates the session cookie and loads the admin into the
// context. Anything short of a valid cookie naming an existing user redirects
// to the login page.
func SessionRequired(cfg *config.SessionConfig, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}
		claims, err := auth.ParseSessionToken(cfg, token)
		if err != nil {
			redirectToLogin(c)
			return
		}
		u, err := users.GetByID(claims.UserID)
		if err != nil {
			redirectToLogin(c)
			return
		}
		c.Set("user_id", u.ID)
		c.Set("user", u)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

// GetUserID returns the authenticated user ID from context (must be used after SessionRequired).
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get("user")
	if v == nil {
		return nil
	}
	return v.(*models.User)
}
