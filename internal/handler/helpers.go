package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"schoolsite/internal/domain"
	"schoolsite/internal/middleware"
	"schoolsite/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errNoFile = errors.New("no file")

// parseID reads the :id path parameter and answers 404 when it is malformed.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func internalError(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// lookupFailed answers a failed GetByID: 404 for a missing row, 500 otherwise.
func lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		notFound(c)
		return
	}
	internalError(c, "failed to load record")
}

// tooLarge reports and answers an oversized request body.
func tooLarge(c *gin.Context, err error) bool {
	if limit, ok := middleware.BodyLimitOf(err); ok {
		middleware.AbortTooLarge(c, limit)
		return true
	}
	return false
}

// formFile returns the multipart field, or errNoFile when it is absent or unnamed.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, errNoFile
		}
		return nil, err
	}
	if fh.Filename == "" {
		return nil, errNoFile
	}
	return fh, nil
}

func acceptFile(c *gin.Context, files *storage.Store, fh *multipart.FileHeader, category storage.Category) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return files.Accept(c.Request.Context(), f, fh.Filename, category)
}

// saveUpload stores the multipart field in category.
func saveUpload(c *gin.Context, files *storage.Store, field string, category storage.Category) (string, error) {
	fh, err := formFile(c, field)
	if err != nil {
		return "", err
	}
	return acceptFile(c, files, fh, category)
}

// removeFile deletes a stored file. Failures are logged and otherwise ignored.
func removeFile(c *gin.Context, files *storage.Store, log *zap.Logger, category storage.Category, name string) {
	if err := files.Delete(c.Request.Context(), category, name); err != nil {
		log.Warn("file delete failed", zap.String("category", string(category)), zap.String("file", name), zap.Error(err))
	}
}

func strPtr(s string) *string { return &s }

func view(c *gin.Context, data gin.H) {
	data["flashes"] = popFlashes(c)
	c.JSON(http.StatusOK, data)
}

// uploadFailed turns a failed upload into a 413 or a notice on location.
func uploadFailed(c *gin.Context, log *zap.Logger, err error, location, rejected string) {
	if tooLarge(c, err) {
		return
	}
	if errors.Is(err, domain.ErrRejectedFormat) {
		redirectWithFlash(c, location, flashError, rejected)
		return
	}
	log.Error("upload failed", zap.Error(err))
	redirectWithFlash(c, location, flashError, "Upload failed. Please try again.")
}
