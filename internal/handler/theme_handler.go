package handler

import (
	"schoolsite/internal/domain"
	"schoolsite/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ThemeHandler struct {
	repo *repository.ThemeRepository
	log  *zap.Logger
}

func NewThemeHandler(repo *repository.ThemeRepository, log *zap.Logger) *ThemeHandler {
	return &ThemeHandler{repo: repo, log: log}
}

// List handles GET /admin/themes.
func (h *ThemeHandler) List(c *gin.Context) {
	rows, err := h.repo.List()
	if err != nil {
		internalError(c, "failed to list themes")
		return
	}
	view(c, gin.H{"themes": domain.Themes, "rows": rows, "active": activeThemeName(h.repo)})
}

// Activate handles POST /admin/themes/activate.
func (h *ThemeHandler) Activate(c *gin.Context) {
	name := c.PostForm("theme_name")
	if !domain.IsTheme(name) {
		redirectWithFlash(c, "/admin/themes", flashError, "Unknown theme.")
		return
	}
	if _, err := h.repo.Activate(name); err != nil {
		h.log.Error("activate theme", zap.String("theme", name), zap.Error(err))
		redirectWithFlash(c, "/admin/themes", flashError, "Could not change theme.")
		return
	}
	redirectWithFlash(c, "/admin/themes", flashSuccess, "Theme updated successfully!")
}

// activeThemeName falls back to the default theme when no row is active.
func activeThemeName(repo *repository.ThemeRepository) string {
	t, err := repo.Active()
	if err != nil {
		return domain.DefaultTheme
	}
	return t.ThemeName
}
