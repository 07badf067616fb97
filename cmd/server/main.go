package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spiconsulting/consultancy-website/internal/api"
	"github.com/spiconsulting/consultancy-website/internal/core/service"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/config"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/db/mongo"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/db/redis"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/mail"
	"github.com/spiconsulting/consultancy-website/internal/infrastructure/storage"
	"github.com/spiconsulting/consultancy-website/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	jobRepo := mongo.NewJobRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post indexes failed")
	}

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir unavailable")
	}

	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		UseTLS:   cfg.Mail.UseTLS,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	})

	e := api.NewRouter(api.Deps{
		Auth:          service.NewAuthService(userRepo, cfg.SecretKey),
		Posts:         service.NewPostService(postRepo, images, log),
		Jobs:          service.NewJobService(jobRepo, log),
		Contact:       service.NewContactService(mailer, redis.NewContactThrottle(rdb), cfg.Mail.Username, cfg.Mail.Operators, log),
		Export:        service.NewExportService(userRepo, postRepo, jobRepo),
		Sitemap:       service.NewSitemapService(postRepo, jobRepo),
		Mongo:         db,
		Redis:         rdb,
		UploadDir:     cfg.UploadDir,
		SecureCookies: cfg.Env != "development",
		Logger:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
