package router

import (
	"time"

	"schoolsite/config"
	"schoolsite/internal/handler"
	"schoolsite/internal/metrics"
	"schoolsite/internal/middleware"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"
	"schoolsite/internal/storage"
	"schoolsite/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators built in main. Mailer may be nil.
type Deps struct {
	Log     *zap.Logger
	Files   *storage.Store
	LLM     llm.Generator
	Mailer  service.Mailer
	Metrics *metrics.Metrics
}

// Setup builds the engine. Call the returned stop func on shutdown to end
// the rate limiter sweeps.
func Setup(cfg *config.Config, db *gorm.DB, deps Deps) (*gin.Engine, func()) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	log := deps.Log
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Instrument(deps.Metrics))
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadBytes))
	r.Use(handler.FlashSessions(&cfg.Session))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	contentRepo := repository.NewContentRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	elearningRepo := repository.NewELearningRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	// Services
	authSvc := service.NewAuthService(&cfg.Session, userRepo)
	tutorSvc := service.NewTutorService(settingRepo, deps.LLM, log)
	contactSvc := service.NewContactService(deps.Mailer, cfg.Mail.Recipient, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, &cfg.Session, log)
	publicHandler := handler.NewPublicHandler(handler.PublicRepos{
		Content:   contentRepo,
		News:      newsRepo,
		Staff:     staffRepo,
		Gallery:   galleryRepo,
		ELearning: elearningRepo,
		Themes:    themeRepo,
		Videos:    videoRepo,
	}, contactSvc, log)
	filesHandler := handler.NewFilesHandler(deps.Files, elearningRepo)
	tutorHandler := handler.NewTutorHandler(tutorSvc, deps.Metrics.TutorRequests)
	adminHandler := handler.NewAdminHandler(adminRepo, newsRepo, settingRepo, authSvc, log)
	contentHandler := handler.NewContentHandler(contentRepo, log)
	newsHandler := handler.NewNewsHandler(newsRepo, log)
	staffHandler := handler.NewStaffHandler(staffRepo, deps.Files, log)
	galleryHandler := handler.NewGalleryHandler(galleryRepo, deps.Files, log)
	elearningHandler := handler.NewELearningHandler(elearningRepo, deps.Files, log)
	themeHandler := handler.NewThemeHandler(themeRepo, log)
	videoHandler := handler.NewVideoHandler(videoRepo, deps.Files, log)

	loginLimiter := middleware.NewInMemoryRateLimiter(cfg.RateLimit.LoginPerMinute, time.Minute)
	tutorLimiter := middleware.NewInMemoryRateLimiter(cfg.RateLimit.TutorPerMinute, time.Minute)
	stop := func() {
		loginLimiter.Stop()
		tutorLimiter.Stop()
	}
	loginLimit := middleware.RateLimit(loginLimiter)
	tutorLimit := middleware.RateLimit(tutorLimiter)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	// Public
	r.GET("/", publicHandler.Home)
	r.GET("/about", publicHandler.About)
	r.GET("/gallery", publicHandler.Gallery)
	r.GET("/news", publicHandler.News)
	r.GET("/achievements", publicHandler.Achievements)
	r.GET("/elearning", publicHandler.ELearning)
	r.GET("/elearning/:id/download", filesHandler.Download)
	r.GET("/contact", publicHandler.ContactPage)
	r.POST("/contact", publicHandler.Contact)
	r.GET("/ai-tutor", tutorHandler.Page)
	r.POST("/ai-tutor", tutorLimit, tutorHandler.Ask)
	r.GET("/uploads/:category/:filename", filesHandler.Serve)

	// Session
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", loginLimit, authHandler.Login)

	sessionMw := middleware.SessionRequired(&cfg.Session, userRepo)
	admin := r.Group("")
	admin.Use(sessionMw, middleware.NoStore())
	{
		admin.GET("/logout", authHandler.Logout)
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/admin/manage-content", contentHandler.Manage)
		admin.POST("/admin/manage-content", contentHandler.Update)

		admin.GET("/admin/manage-news", newsHandler.List)
		admin.POST("/admin/manage-news", newsHandler.Create)
		admin.GET("/admin/delete-news/:id", newsHandler.Delete)
		admin.POST("/admin/delete-news/:id", newsHandler.Delete)

		admin.GET("/admin/manage-staff", staffHandler.List)
		admin.POST("/admin/manage-staff", staffHandler.Create)
		admin.GET("/admin/delete-staff/:id", staffHandler.Delete)
		admin.POST("/admin/delete-staff/:id", staffHandler.Delete)

		admin.GET("/admin/manage-gallery", galleryHandler.List)
		admin.POST("/admin/manage-gallery", galleryHandler.Create)
		admin.GET("/admin/delete-gallery/:id", galleryHandler.Delete)
		admin.POST("/admin/delete-gallery/:id", galleryHandler.Delete)

		admin.GET("/admin/manage-elearning", elearningHandler.List)
		admin.POST("/admin/manage-elearning", elearningHandler.Create)
		admin.GET("/admin/delete-elearning/:id", elearningHandler.Delete)
		admin.POST("/admin/delete-elearning/:id", elearningHandler.Delete)

		admin.GET("/admin/settings", adminHandler.Settings)
		admin.POST("/admin/settings", adminHandler.UpdateSettings)
		admin.GET("/admin/site-settings", adminHandler.SiteSettings)
		admin.POST("/admin/site-settings", adminHandler.UpdateSiteSettings)

		admin.GET("/admin/themes", themeHandler.List)
		admin.POST("/admin/themes/activate", themeHandler.Activate)

		admin.GET("/admin/manage-video", videoHandler.List)
		admin.POST("/admin/manage-video", videoHandler.Create)
		admin.POST("/admin/activate-video/:id", videoHandler.Activate)
		admin.GET("/admin/delete-video/:id", videoHandler.Delete)
		admin.POST("/admin/delete-video/:id", videoHandler.Delete)
	}

	return r, stop
}
