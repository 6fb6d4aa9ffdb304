package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/handlers"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/metrics"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	petHandler *handlers.PetHandler,
	adoptionHandler *handlers.AdoptionHandler,
	messageHandler *handlers.MessageHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth routes are public with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Success stories are the only public listing.
	api.Get("/success-stories", adoptionHandler.Stories)

	// Everything below requires a signed-in user.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/pets", petHandler.List)
	protected.Post("/pets", petHandler.Create)
	protected.Get("/pets/:id", petHandler.Get)
	protected.Get("/dashboard", petHandler.Dashboard)

	protected.Post("/pets/:id/apply", adoptionHandler.Apply)
	protected.Post("/requests/:id/approve", adoptionHandler.Approve)
	protected.Post("/requests/:id/reject", adoptionHandler.Reject)
	protected.Get("/pets/:id/applicants", adoptionHandler.Applicants)

	protected.Get("/pets/:id/messages", messageHandler.Thread)
	protected.Post("/pets/:id/messages", messageHandler.Command)
	protected.Put("/messages/:id", messageHandler.Edit)

	// Privileged operator views.
	admin := api.Group("/analytics", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("", analyticsHandler.Overview)
}
