package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	deps *apps.Deps,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	auth.Patch("/me", middleware.JWTProtected(cfg), authHandler.UpdateProfile)

	// Public plugin routes go first so the protected group below never
	// sees them.
	for _, p := range plugins {
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api, deps)
		}
	}

	protected := api.Group("", middleware.JWTProtected(cfg))
	for _, p := range plugins {
		p.RegisterRoutes(protected, deps)
	}
}
