package handler

import (
	"errors"
	"strings"

	"schoolsite/internal/domain"
	"schoolsite/internal/middleware"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminRepo   *repository.AdminRepository
	newsRepo    *repository.NewsRepository
	settingRepo *repository.SettingRepository
	authSvc     *service.AuthService
	log         *zap.Logger
}

func NewAdminHandler(
	adminRepo *repository.AdminRepository,
	newsRepo *repository.NewsRepository,
	settingRepo *repository.SettingRepository,
	authSvc *service.AuthService,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminRepo:   adminRepo,
		newsRepo:    newsRepo,
		settingRepo: settingRepo,
		authSvc:     authSvc,
		log:         log,
	}
}

// Dashboard handles GET /dashboard. It returns overview stats and the latest posts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminRepo.GetDashboardStats()
	if err != nil {
		internalError(c, "failed to load stats")
		return
	}
	recent, err := h.newsRepo.List("", domain.DashboardRecentMax)
	if err != nil {
		internalError(c, "failed to load news")
		return
	}
	view(c, gin.H{"stats": stats, "recent_news": recent})
}

// Settings handles GET /admin/settings.
func (h *AdminHandler) Settings(c *gin.Context) {
	u := middleware.CurrentUser(c)
	view(c, gin.H{"username": u.Username, "email": u.Email})
}

// UpdateSettings handles POST /admin/settings. It changes the admin email and password.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	err := h.authSvc.UpdateCredentials(
		middleware.GetUserID(c),
		strings.TrimSpace(c.PostForm("email")),
		c.PostForm("current_password"),
		c.PostForm("new_password"),
	)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		redirectWithFlash(c, "/admin/settings", flashError, "Current password is incorrect.")
	case err != nil:
		h.log.Error("update admin settings", zap.Error(err))
		redirectWithFlash(c, "/admin/settings", flashError, "Could not update settings.")
	default:
		redirectWithFlash(c, "/admin/settings", flashSuccess, "Admin settings updated successfully!")
	}
}

// SiteSettings handles GET /admin/site-settings. The AI key is never echoed in full.
func (h *AdminHandler) SiteSettings(c *gin.Context) {
	key, err := h.settingRepo.Get(domain.SettingAIAPIKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		internalError(c, "failed to load settings")
		return
	}
	view(c, gin.H{"ai_api_key": maskSecret(key), "ai_configured": key != ""})
}

// UpdateSiteSettings handles POST /admin/site-settings. An empty key field
// leaves the stored key alone unless clear_ai_api_key is set.
func (h *AdminHandler) UpdateSiteSettings(c *gin.Context) {
	key := strings.TrimSpace(c.PostForm("ai_api_key"))
	wipe := c.PostForm("clear_ai_api_key") != ""
	if key == "" && !wipe {
		redirectWithFlash(c, "/admin/site-settings", flashInfo, "No changes made.")
		return
	}
	if wipe {
		key = ""
	}
	if err := h.settingRepo.Set(domain.SettingAIAPIKey, key); err != nil {
		h.log.Error("update site settings", zap.Error(err))
		redirectWithFlash(c, "/admin/site-settings", flashError, "Could not save settings.")
		return
	}
	redirectWithFlash(c, "/admin/site-settings", flashSuccess, "Site settings updated successfully!")
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
