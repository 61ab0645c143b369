package handlers

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"timebank/internal/config"
	applog "timebank/internal/log"
	"timebank/internal/services"
)

// NewApp builds the Fiber app with middleware and every route.
func NewApp(cfg config.Config, catalog *services.CatalogService) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 NewEngine(cfg.TemplatesDir, cfg.Env == "dev"),
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
	app.Server().MaxRequestBodySize = 64 << 10 // read-only surface

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	if cfg.MinifyHTML {
		app.Use(MinifyHTML())
	}

	Register(app, NewDeps(catalog), cfg)
	return app
}

// ErrorHandler logs server errors and renders a friendly page without
// leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok && fe.Code < 500 {
		code = fe.Code
	} else {
		applog.Error(c, "server.error", err, nil)
	}
	msg := "Something went wrong. Please try again."
	if code == fiber.StatusNotFound {
		msg = "Page not found"
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// Register mounts pages, API, static assets and the fallback 404.
func Register(app *fiber.App, deps *Deps, cfg config.Config) {
	app.Get("/", deps.PageHandler.Home)

	api := app.Group("/api/v1", limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.api.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	api.Get("/listings", deps.ListingHandler.List)
	api.Get("/listings/:id", deps.ListingHandler.Get)
	api.Get("/listings/:id/quote", deps.PricingHandler.Quote)
	api.Get("/regions", deps.ListingHandler.Regions)
	api.Get("/store", deps.ListingHandler.Store)
	api.Get("/memberships", deps.PricingHandler.Memberships)
	api.Get("/roi", deps.PricingHandler.ROI)

	app.Static("/static", cfg.StaticDir)
	dataset := filepath.Join(cfg.StaticDir, "uwuseon_campsites.json")
	app.Get("/uwuseon_campsites.json", func(c *fiber.Ctx) error {
		if err := c.SendFile(dataset); err != nil {
			return err
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		return nil
	})
	app.Get("/images/*", Media(filepath.Join(cfg.MediaDir, "images")))
	app.Get("/videos/*", Media(filepath.Join(cfg.MediaDir, "videos")))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "Page not found")
	})
}

// Media serves files below dir and refuses anything that tries to climb out.
func Media(dir string) fiber.Handler {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(dir, clean), true)
	}
}
