package handler

import (
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
)

type FilesHandler struct {
	files     *storage.Store
	elearning *repository.ELearningRepository
}

func NewFilesHandler(files *storage.Store, elearning *repository.ELearningRepository) *FilesHandler {
	return &FilesHandler{files: files, elearning: elearning}
}

// Serve handles GET /uploads/:category/:filename.
func (h *FilesHandler) Serve(c *gin.Context) {
	category, ok := storage.ParseCategory(c.Param("category"))
	if !ok {
		notFound(c)
		return
	}
	path, err := h.files.Path(category, c.Param("filename"))
	if err != nil {
		notFound(c)
		return
	}
	c.File(path)
}

// Download handles GET /elearning/:id/download. The attachment is named
// after the resource title.
func (h *FilesHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.elearning.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	file, ok := res.Content().(models.FileResource)
	if !ok || file.Filename == "" {
		notFound(c)
		return
	}
	category, err := storage.ClassifyResource(file.Filename)
	if err != nil {
		notFound(c)
		return
	}
	path, err := h.files.Path(category, file.Filename)
	if err != nil {
		notFound(c)
		return
	}
	name := storage.DownloadName(res.Title, file.Filename)
	if storage.SecureFilename(res.Title) == "" {
		name = file.Filename
	}
	c.FileAttachment(path, name)
}
