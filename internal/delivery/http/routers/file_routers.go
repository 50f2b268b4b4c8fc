package routers

import (
	"time"

	"file-relay/internal/delivery/http/handlers"
	"file-relay/internal/delivery/http/middleware"
	"file-relay/internal/pkg/config"
	"file-relay/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func SetupFileRoutes(app *fiber.App, h *handlers.FileHandler, cfg *config.Config) {
	auth := middleware.APIKeyAuth(cfg.Auth.APIKey)

	uploadChain := []fiber.Handler{}
	if cfg.Server.RateLimitPerMinute > 0 {
		uploadChain = append(uploadChain, limiter.New(limiter.Config{
			Max:        cfg.Server.RateLimitPerMinute,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success": false,
					"error":   "Too many uploads, slow down",
				})
			},
		}))
	}
	uploadChain = append(uploadChain, auth, h.Upload)

	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/files", h.ListFiles)
	api.Post("/files/upload", uploadChain...)
	api.Get("/files/:id", h.GetFile)
	if cfg.Auth.ProtectDelete {
		api.Delete("/files/:id", auth, h.DeleteFile)
	} else {
		api.Delete("/files/:id", h.DeleteFile)
	}

	app.Get("/v/:id", h.Embed)
}

// NotFound answers unknown API routes with the JSON envelope.
func NotFound(c *fiber.Ctx) error {
	return errors.FiberErrorHandler(c, fiber.ErrNotFound)
}
