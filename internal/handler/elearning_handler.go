package handler

import (
	"errors"
	"strings"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ELearningHandler struct {
	repo  *repository.ELearningRepository
	files *storage.Store
	log   *zap.Logger
}

func NewELearningHandler(repo *repository.ELearningRepository, files *storage.Store, log *zap.Logger) *ELearningHandler {
	return &ELearningHandler{repo: repo, files: files, log: log}
}

// List handles GET /admin/manage-elearning.
func (h *ELearningHandler) List(c *gin.Context) {
	resources, err := h.repo.List(repository.ResourceFilter{})
	if err != nil {
		internalError(c, "failed to list resources")
		return
	}
	view(c, gin.H{"resources": resources, "forms": domain.Forms, "subjects": domain.Subjects})
}

// Create handles POST /admin/manage-elearning. A file resource without an
// upload is still recorded, with no file attached.
func (h *ELearningHandler) Create(c *gin.Context) {
	res := &models.ELearningResource{
		Title:       c.PostForm("title"),
		Form:        c.PostForm("form"),
		Subject:     c.PostForm("subject"),
		Description: c.PostForm("description"),
	}

	switch c.PostForm("resource_type") {
	case domain.ResourceTypeYoutube:
		url := strings.TrimSpace(c.PostForm("youtube_url"))
		if url == "" {
			redirectWithFlash(c, "/admin/manage-elearning", flashError, "Please provide a YouTube link.")
			return
		}
		res.SetContent(models.YoutubeResource{URL: url})
	case domain.ResourceTypeFile:
		name, err := h.saveResourceFile(c)
		if err != nil && !errors.Is(err, errNoFile) {
			uploadFailed(c, h.log, err, "/admin/manage-elearning", "Invalid file type. Please upload a document or video.")
			return
		}
		res.SetContent(models.FileResource{Filename: name})
	default:
		redirectWithFlash(c, "/admin/manage-elearning", flashError, "Choose a file or a YouTube link.")
		return
	}

	if err := h.repo.Create(res); err != nil {
		h.log.Error("create e-learning resource", zap.Error(err))
		redirectWithFlash(c, "/admin/manage-elearning", flashError, "Could not save resource.")
		return
	}
	redirectWithFlash(c, "/admin/manage-elearning", flashSuccess, "E-learning resource added successfully!")
}

func (h *ELearningHandler) saveResourceFile(c *gin.Context) (string, error) {
	fh, err := formFile(c, "file")
	if err != nil {
		return "", err
	}
	category, err := storage.ClassifyResource(fh.Filename)
	if err != nil {
		return "", err
	}
	return acceptFile(c, h.files, fh, category)
}

// Delete handles /admin/delete-elearning/:id. The file's directory follows
// from its extension.
func (h *ELearningHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	if f, ok := res.Content().(models.FileResource); ok && f.Filename != "" {
		if category, err := storage.ClassifyResource(f.Filename); err == nil {
			removeFile(c, h.files, h.log, category, f.Filename)
		}
	}
	if err := h.repo.Delete(res); err != nil {
		internalError(c, "failed to delete")
		return
	}
	redirectWithFlash(c, "/admin/manage-elearning", flashSuccess, "E-learning resource deleted successfully!")
}
