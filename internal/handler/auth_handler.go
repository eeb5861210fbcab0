package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"schoolsite/config"
	"schoolsite/internal/domain"
	"schoolsite/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
	cfg *config.SessionConfig
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, cfg *config.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg, log: log}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	view(c, gin.H{"next": safeNext(c.Query("next"))})
}

// Login handles POST /login. Every credential failure gets the same notice.
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	next := safeNext(c.PostForm("next"))

	u, token, err := h.svc.Login(email, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Error("login failed", zap.Error(err))
		}
		target := "/login"
		if next != "" {
			target += "?next=" + url.QueryEscape(next)
		}
		redirectWithFlash(c, target, flashError, "Invalid email or password.")
		return
	}
	h.setSession(c, token, int(h.cfg.TTL.Seconds()))
	h.log.Info("admin logged in", zap.Uint("user_id", u.ID))
	if next == "" {
		next = "/dashboard"
	}
	redirectWithFlash(c, next, flashSuccess, "Login successful!")
}

// Logout handles GET /logout. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSession(c, "", -1)
	redirectWithFlash(c, "/", flashInfo, "You have been logged out.")
}

func (h *AuthHandler) setSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", h.cfg.Secure, true)
}

// safeNext only allows same-site absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return ""
	}
	return next
}
