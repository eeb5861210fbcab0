package handler

import (
	"errors"

	"schoolsite/internal/database"
	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContentHandler struct {
	repo *repository.ContentRepository
	log  *zap.Logger
}

func NewContentHandler(repo *repository.ContentRepository, log *zap.Logger) *ContentHandler {
	return &ContentHandler{repo: repo, log: log}
}

// Manage handles GET /admin/manage-content.
func (h *ContentHandler) Manage(c *gin.Context) {
	content, err := h.repo.Get()
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		internalError(c, "failed to load content")
		return
	}
	view(c, gin.H{"content": content})
}

// Update handles POST /admin/manage-content. Missing fields become empty,
// except the school name which falls back to the default.
func (h *ContentHandler) Update(c *gin.Context) {
	content, err := h.repo.Get()
	if errors.Is(err, domain.ErrNotFound) {
		content = &models.SchoolContent{}
	} else if err != nil {
		internalError(c, "failed to load content")
		return
	}

	content.SchoolName = c.DefaultPostForm("school_name", database.DefaultSchoolContent().SchoolName)
	content.PrincipalMessage = c.PostForm("principal_message")
	content.Mission = c.PostForm("mission")
	content.Vision = c.PostForm("vision")
	content.Motto = c.PostForm("motto")
	content.History = c.PostForm("history")
	content.Achievements = c.PostForm("achievements")
	content.ContactAddress = c.PostForm("contact_address")
	content.ContactPhone = c.PostForm("contact_phone")
	content.ContactEmail = c.PostForm("contact_email")

	if err := h.repo.Save(content); err != nil {
		h.log.Error("save school content", zap.Error(err))
		redirectWithFlash(c, "/admin/manage-content", flashError, "Could not save content.")
		return
	}
	redirectWithFlash(c, "/admin/manage-content", flashSuccess, "School content updated successfully!")
}
