package handler

import (
	"errors"

	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	repo  *repository.GalleryRepository
	files *storage.Store
	log   *zap.Logger
}

func NewGalleryHandler(repo *repository.GalleryRepository, files *storage.Store, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{repo: repo, files: files, log: log}
}

// List handles GET /admin/manage-gallery.
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.repo.List(0)
	if err != nil {
		internalError(c, "failed to list images")
		return
	}
	view(c, gin.H{"images": images})
}

// Create handles POST /admin/manage-gallery. The image is required.
func (h *GalleryHandler) Create(c *gin.Context) {
	name, err := saveUpload(c, h.files, "file", storage.Image)
	if errors.Is(err, errNoFile) {
		redirectWithFlash(c, "/admin/manage-gallery", flashError, "No file selected.")
		return
	}
	if err != nil {
		uploadFailed(c, h.log, err, "/admin/manage-gallery", "Invalid file type. Please upload an image.")
		return
	}
	img := &models.GalleryImage{
		Filename:    name,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if err := h.repo.Create(img); err != nil {
		h.log.Error("create gallery image", zap.String("file", name), zap.Error(err))
		redirectWithFlash(c, "/admin/manage-gallery", flashError, "Could not save image.")
		return
	}
	redirectWithFlash(c, "/admin/manage-gallery", flashSuccess, "Image uploaded successfully!")
}

// Delete handles /admin/delete-gallery/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	img, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	removeFile(c, h.files, h.log, storage.Gallery, img.Filename)
	if err := h.repo.Delete(img); err != nil {
		internalError(c, "failed to delete")
		return
	}
	redirectWithFlash(c, "/admin/manage-gallery", flashSuccess, "Image deleted successfully!")
}
