package handler

import (
	"errors"
	"net/http"

	"schoolsite/internal/domain"
	"schoolsite/internal/middleware"
	"schoolsite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const tutorUnavailable = "Sorry, the AI tutor is unavailable right now. Please try again later."

type TutorHandler struct {
	svc      *service.TutorService
	requests *prometheus.CounterVec
}

func NewTutorHandler(svc *service.TutorService, requests *prometheus.CounterVec) *TutorHandler {
	return &TutorHandler{svc: svc, requests: requests}
}

// Page handles GET /ai-tutor.
func (h *TutorHandler) Page(c *gin.Context) {
	view(c, gin.H{"configured": h.svc.Configured()})
}

// Ask handles POST /ai-tutor. It always answers JSON.
func (h *TutorHandler) Ask(c *gin.Context) {
	in := service.TutorQuestion{}
	if c.ContentType() == gin.MIMEJSON {
		var req struct {
			Question string `json:"question"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		in.Question = req.Question
	} else {
		in.Question = c.PostForm("question")
		fh, err := formFile(c, "image")
		switch {
		case errors.Is(err, errNoFile):
		case middleware.IsBodyTooLarge(err):
			limit, _ := middleware.BodyLimitOf(err)
			h.fail(c, http.StatusRequestEntityTooLarge, middleware.TooLargeMessage(limit))
			return
		case err != nil:
			h.fail(c, http.StatusBadRequest, "Could not read the uploaded image.")
			return
		default:
			f, err := fh.Open()
			if err != nil {
				h.fail(c, http.StatusBadRequest, "Could not read the uploaded image.")
				return
			}
			defer f.Close()
			in.Image = f
			in.ImageName = fh.Filename
		}
	}

	answer, err := h.svc.Ask(c.Request.Context(), in)
	switch {
	case errors.Is(err, domain.ErrQuestionRequired):
		h.fail(c, http.StatusBadRequest, "Please enter a question.")
	case errors.Is(err, domain.ErrTutorNotConfigured):
		h.fail(c, http.StatusBadRequest, "The AI tutor has not been configured yet. Please contact the administrator.")
	case errors.Is(err, domain.ErrRejectedFormat):
		h.fail(c, http.StatusBadRequest, "Invalid image type. Please upload a PNG, JPG or GIF.")
	case err != nil:
		h.count("error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": tutorUnavailable})
	default:
		h.count("ok")
		c.JSON(http.StatusOK, answer)
	}
}

func (h *TutorHandler) fail(c *gin.Context, status int, msg string) {
	h.count("rejected")
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func (h *TutorHandler) count(result string) {
	if h.requests != nil {
		h.requests.WithLabelValues(result).Inc()
	}
}
