package handler

import (
	"strings"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NewsHandler struct {
	repo *repository.NewsRepository
	log  *zap.Logger
}

func NewNewsHandler(repo *repository.NewsRepository, log *zap.Logger) *NewsHandler {
	return &NewsHandler{repo: repo, log: log}
}

// List handles GET /admin/manage-news.
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.repo.List("", 0)
	if err != nil {
		internalError(c, "failed to list news")
		return
	}
	view(c, gin.H{"news_items": items})
}

// Create handles POST /admin/manage-news.
func (h *NewsHandler) Create(c *gin.Context) {
	newsType := c.DefaultPostForm("type", domain.NewsTypeNews)
	if newsType == "" {
		newsType = domain.NewsTypeNews
	}
	if newsType != domain.NewsTypeNews && newsType != domain.NewsTypeEvent {
		redirectWithFlash(c, "/admin/manage-news", flashError, "Type must be news or event.")
		return
	}
	item := &models.NewsEvent{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Type:    newsType,
	}
	if err := h.repo.Create(item); err != nil {
		h.log.Error("create news", zap.Error(err))
		redirectWithFlash(c, "/admin/manage-news", flashError, "Could not save the item.")
		return
	}
	redirectWithFlash(c, "/admin/manage-news", flashSuccess, strings.ToUpper(newsType[:1])+newsType[1:]+" created successfully!")
}

// Delete handles /admin/delete-news/:id.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	if err := h.repo.Delete(item); err != nil {
		internalError(c, "failed to delete")
		return
	}
	redirectWithFlash(c, "/admin/manage-news", flashSuccess, "News/Event deleted successfully!")
}
