package handler

import (
	"errors"

	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StaffHandler struct {
	repo  *repository.StaffRepository
	files *storage.Store
	log   *zap.Logger
}

func NewStaffHandler(repo *repository.StaffRepository, files *storage.Store, log *zap.Logger) *StaffHandler {
	return &StaffHandler{repo: repo, files: files, log: log}
}

// List handles GET /admin/manage-staff.
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.repo.List()
	if err != nil {
		internalError(c, "failed to list staff")
		return
	}
	view(c, gin.H{"staff_members": staff})
}

// Create handles POST /admin/manage-staff. The photo is optional and lives
// in the gallery directory.
func (h *StaffHandler) Create(c *gin.Context) {
	member := &models.StaffMember{
		Name:           c.PostForm("name"),
		Position:       c.PostForm("position"),
		Qualifications: c.PostForm("qualifications"),
		Subjects:       c.PostForm("subjects"),
	}
	photo, err := saveUpload(c, h.files, "photo", storage.Image)
	switch {
	case errors.Is(err, errNoFile):
	case err != nil:
		uploadFailed(c, h.log, err, "/admin/manage-staff", "Invalid photo type. Please upload an image.")
		return
	default:
		member.PhotoFilename = strPtr(photo)
	}
	if err := h.repo.Create(member); err != nil {
		h.log.Error("create staff member", zap.Error(err))
		redirectWithFlash(c, "/admin/manage-staff", flashError, "Could not save staff member.")
		return
	}
	redirectWithFlash(c, "/admin/manage-staff", flashSuccess, "Staff member added successfully!")
}

// Delete handles /admin/delete-staff/:id.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.repo.GetByID(id)
	if err != nil {
		lookupFailed(c, err)
		return
	}
	if member.PhotoFilename != nil {
		removeFile(c, h.files, h.log, storage.Gallery, *member.PhotoFilename)
	}
	if err := h.repo.Delete(member); err != nil {
		internalError(c, "failed to delete")
		return
	}
	redirectWithFlash(c, "/admin/manage-staff", flashSuccess, "Staff member deleted successfully!")
}
