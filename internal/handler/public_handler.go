package handler

import (
	"errors"
	"strings"

	"schoolsite/internal/domain"
	"schoolsite/internal/models"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicRepos groups the read models behind the public pages.
type PublicRepos struct {
	Content   *repository.ContentRepository
	News      *repository.NewsRepository
	Staff     *repository.StaffRepository
	Gallery   *repository.GalleryRepository
	ELearning *repository.ELearningRepository
	Themes    *repository.ThemeRepository
	Videos    *repository.VideoRepository
}

type PublicHandler struct {
	repos   PublicRepos
	contact *service.ContactService
	log     *zap.Logger
}

func NewPublicHandler(repos PublicRepos, contact *service.ContactService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{repos: repos, contact: contact, log: log}
}

// page renders a public view with the content singleton and active theme.
func (h *PublicHandler) page(c *gin.Context, data gin.H) {
	content, err := h.repos.Content.Get()
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		internalError(c, "failed to load content")
		return
	}
	data["content"] = content
	data["theme"] = activeThemeName(h.repos.Themes)
	view(c, data)
}

// Home handles GET /.
func (h *PublicHandler) Home(c *gin.Context) {
	news, err := h.repos.News.List(domain.NewsTypeNews, domain.HomeNewsLimit)
	if err != nil {
		internalError(c, "failed to load news")
		return
	}
	events, err := h.repos.News.List(domain.NewsTypeEvent, domain.HomeEventsLimit)
	if err != nil {
		internalError(c, "failed to load events")
		return
	}
	images, err := h.repos.Gallery.List(domain.HomeGalleryLimit)
	if err != nil {
		internalError(c, "failed to load gallery")
		return
	}
	var video *models.VideoSetting
	if v, err := h.repos.Videos.Active(); err == nil {
		video = v
	} else if !errors.Is(err, domain.ErrNotFound) {
		h.log.Warn("load active video", zap.Error(err))
	}
	h.page(c, gin.H{
		"latest_news":      news,
		"upcoming_events":  events,
		"gallery_images":   images,
		"background_video": video,
	})
}

// About handles GET /about.
func (h *PublicHandler) About(c *gin.Context) {
	staff, err := h.repos.Staff.List()
	if err != nil {
		internalError(c, "failed to load staff")
		return
	}
	h.page(c, gin.H{"staff_members": staff})
}

// Gallery handles GET /gallery.
func (h *PublicHandler) Gallery(c *gin.Context) {
	images, err := h.repos.Gallery.List(0)
	if err != nil {
		internalError(c, "failed to load gallery")
		return
	}
	h.page(c, gin.H{"images": images})
}

// News handles GET /news.
func (h *PublicHandler) News(c *gin.Context) {
	news, err := h.repos.News.List(domain.NewsTypeNews, 0)
	if err != nil {
		internalError(c, "failed to load news")
		return
	}
	events, err := h.repos.News.List(domain.NewsTypeEvent, 0)
	if err != nil {
		internalError(c, "failed to load events")
		return
	}
	h.page(c, gin.H{"news_items": news, "events": events})
}

// Achievements handles GET /achievements.
func (h *PublicHandler) Achievements(c *gin.Context) {
	h.page(c, gin.H{})
}

// ELearning handles GET /elearning?form=&subject=.
func (h *PublicHandler) ELearning(c *gin.Context) {
	filter := repository.ResourceFilter{Form: c.Query("form"), Subject: c.Query("subject")}
	resources, err := h.repos.ELearning.List(filter)
	if err != nil {
		internalError(c, "failed to load resources")
		return
	}
	h.page(c, gin.H{
		"resources":        resources,
		"forms":            domain.Forms,
		"subjects":         domain.Subjects,
		"selected_form":    filter.Form,
		"selected_subject": filter.Subject,
	})
}

// ContactPage handles GET /contact.
func (h *PublicHandler) ContactPage(c *gin.Context) {
	h.page(c, gin.H{})
}

// Contact handles POST /contact. The visitor is always thanked.
func (h *PublicHandler) Contact(c *gin.Context) {
	h.contact.Submit(service.ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: c.PostForm("message"),
	})
	redirectWithFlash(c, "/contact", flashSuccess, "Thank you for your message! We will get back to you soon.")
}
