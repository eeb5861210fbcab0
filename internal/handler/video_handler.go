package handler

import (
	"errors"

	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	repo  *repository.VideoRepository
	files *storage.Store
	log   *zap.Logger
}

func NewVideoHandler(repo *repository.VideoRepository, files *storage.Store, log *zap.Logger) *VideoHandler {
	return &VideoHandler{repo: repo, files: files, log: log}
}

// List handles GET /admin/manage-video.
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.repo.List()
	if err != nil {
		internalError(c, "failed to list videos")
		return
	}
	view(c, gin.H{"videos": videos})
}

// Create handles POST /admin/manage-video. The new video becomes the active one.
func (h *VideoHandler) Create(c *gin.Context) {
	name, err := saveUpload(c, h.files, "video", storage.BackgroundVideos)
	if errors.Is(err, errNoFile) {
		redirectWithFlash(c, "/admin/manage-video", flashError, "No video selected.")
		return
	}
	if err != nil {
		uploadFailed(c, h.log, err, "/admin/manage-video", "Invalid file type. Please upload a video.")
		return
	}
	v := &models.VideoSetting{VideoFilename: name, VideoTitle: c.PostForm("video_title")}
	if err := h.repo.CreateActive(v); err != nil {
		h.log.Error("create background video", zap.String("file", name), zap.Error(err))
		redirectWithFlash(c, "/admin/manage-video", flashError, "Could not save video.")
		return
	}
	redirectWithFlash(c, "/admin/manage-video", flashSuccess, "Background video uploaded successfully!")
}

// Activate handles POST /admin/activate-video/:id.
func (h *VideoHandler) Activate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	if err := h.repo.Activate(v); err != nil {
		h.log.Error("activate video", zap.Uint("id", id), zap.Error(err))
		redirectWithFlash(c, "/admin/manage-video", flashError, "Could not activate video.")
		return
	}
	redirectWithFlash(c, "/admin/manage-video", flashSuccess, "Background video activated!")
}

// Delete handles /admin/delete-video/:id.
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	removeFile(c, h.files, h.log, storage.BackgroundVideos, v.VideoFilename)
	if err := h.repo.Delete(v); err != nil {
		internalError(c, "failed to delete")
		return
	}
	redirectWithFlash(c, "/admin/manage-video", flashSuccess, "Background video deleted successfully!")
}
