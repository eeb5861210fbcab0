package handler

import (
	"encoding/gob"
	"net/http"

	"schoolsite/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// FlashCookie names the signed cookie holding pending notices.
const FlashCookie = "flash"

// Flash is a one-shot notice shown on the next page view.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

func init() { gob.Register(Flash{}) }

// FlashSessions signs the notice cookie with the session secret.
func FlashSessions(cfg *config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(FlashCookie, store)
}

func addFlash(c *gin.Context, category, message string) {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	_ = s.Save()
}

// popFlashes returns pending notices and clears them.
func popFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	if len(raw) > 0 {
		_ = s.Save()
	}
	return flashes
}

func redirectWithFlash(c *gin.Context, location, category, message string) {
	addFlash(c, category, message)
	c.Redirect(http.StatusFound, location)
}
