package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolsite/config"
	"schoolsite/internal/database"
	"schoolsite/internal/metrics"
	"schoolsite/internal/router"
	"schoolsite/internal/service"
	"schoolsite/internal/storage"
	"schoolsite/pkg/cloudinary"
	"schoolsite/pkg/llm"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := newLogger(cfg)
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	if err := database.Bootstrap(db, log); err != nil {
		log.Fatal("bootstrap", zap.Error(err))
	}

	m := metrics.New()
	storeOpts := []storage.Option{storage.WithUploadCounter(m.Uploads)}
	if cfg.Cloudinary.Enabled() {
		cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatal("cloudinary", zap.Error(err))
		}
		storeOpts = append(storeOpts, storage.WithMirror(cloud, cfg.Cloudinary.Folder))
		log.Info("cloudinary mirror enabled", zap.String("folder", cfg.Cloudinary.Folder))
	}
	files, err := storage.New(cfg.Uploads.Root, log, storeOpts...)
	if err != nil {
		log.Fatal("upload store", zap.Error(err))
	}

	var mailer service.Mailer
	if cfg.Mail.Enabled() {
		mailer = service.NewSMTPMailer(cfg.Mail)
	} else {
		log.Info("contact mail disabled: set MAIL_USERNAME and MAIL_PASSWORD to enable")
	}

	engine, stopLimiters := router.Setup(cfg, db, router.Deps{
		Log:     log,
		Files:   files,
		LLM:     llm.NewOpenAILLM(cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.ImageModel),
		Mailer:  mailer,
		Metrics: m,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	stopLimiters()
	if err := database.Close(db); err != nil {
		log.Error("close database", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return log
}
