package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "file-relay/docs"

	"file-relay/internal/delivery/http/handlers"
	"file-relay/internal/delivery/http/routers"
	"file-relay/internal/delivery/http/views"
	"file-relay/internal/domain/repositories"
	infra_repo "file-relay/internal/infrastructure/repositories"
	"file-relay/internal/infrastructure/snapshot"
	"file-relay/internal/infrastructure/upstream"
	"file-relay/internal/pkg/config"
	"file-relay/internal/usecases"
	"file-relay/pkg/errors"
	"file-relay/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"
)

// @title                       File Relay API
// @version                     1.0
// @description                 Relays uploads to catbox.moe or file.io and indexes the direct URLs.
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
func main() {
	config.LoadEnvFile()
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Sugar.Fatalw("invalid configuration", "error", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		logger.Sugar.Fatalw("could not create working directories", "error", err)
	}

	// Persistence
	store, closer, err := snapshot.NewStore(cfg.Snapshot)
	if err != nil {
		logger.Sugar.Fatalw("snapshot store unavailable", "driver", cfg.Snapshot.Driver, "error", err)
	}
	defer closer.Close()

	memRepo := infra_repo.NewInMemoryFileRepository()
	var fileRepo repositories.FileRecordRepository = memRepo
	if cfg.Snapshot.Interval <= 0 {
		fileRepo = snapshot.NewWriteThrough(memRepo, store)
	}
	snapshotter := snapshot.NewSnapshotter(memRepo, store, cfg.Snapshot.Interval)
	snapshotter.Restore(context.Background())

	// Upstream & services
	host, err := upstream.New(cfg.Upload)
	if err != nil {
		logger.Sugar.Fatalw("upstream host", "error", err)
	}
	uploadService := usecases.NewUploadService(fileRepo, host, cfg.Upload.MaxFileSize)
	cleanupService := usecases.NewCleanupService(cfg.Upload.TempDir)

	// Background jobs
	c := cron.New(cron.WithSeconds())
	if err := snapshotter.Schedule(c); err != nil {
		logger.Sugar.Fatalw("snapshot schedule", "error", err)
	}
	_, err = c.AddFunc(cfg.Upload.CleanupSchedule, func() {
		if _, err := cleanupService.CleanupOldTempFiles(cfg.Upload.TempMaxAge); err != nil {
			logger.Sugar.Errorw("error cleaning up old temp files", "error", err)
		}
	})
	if err != nil {
		logger.Sugar.Fatalw("cleanup schedule", "schedule", cfg.Upload.CleanupSchedule, "error", err)
	}
	c.Start()

	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20, // multipart envelope
		ErrorHandler: errors.FiberErrorHandler,
		Views:        views.Engine(),
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	fileHandler := handlers.NewFileHandler(uploadService, cleanupService, handlers.FileHandlerOptions{
		TempDir:       cfg.Upload.TempDir,
		Domain:        cfg.Server.Domain,
		ProtectDelete: cfg.Auth.ProtectDelete,
	})
	routers.SetupFileRoutes(app, fileHandler, cfg)
	app.Static("/", cfg.Server.PublicDir)
	app.Use(routers.NotFound)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Sugar.Infow("server starting",
		"addr", addr,
		"domain", cfg.Server.Domain,
		"storage", host.Name(),
		"snapshot", store.Name(),
		"restored", memRepo.Len(),
	)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Sugar.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar.Info("shutdown signal received, stopping server")

	ctxShut, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		logger.Sugar.Errorw("server did not shut down cleanly", "error", err)
	}
	<-c.Stop().Done()
	if err := snapshotter.Stop(ctxShut, c); err != nil {
		logger.Sugar.Errorw("final snapshot failed", "error", err)
	}
	logger.Sugar.Info("server stopped")
}
