package routes

import (
	"time"

	"github.com/gatherlyhq/gatherly-backend/internal/config"
	"github.com/gatherlyhq/gatherly-backend/internal/handlers"
	"github.com/gatherlyhq/gatherly-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	contactHandler *handlers.ContactHandler,
	eventHandler *handlers.EventHandler,
	inviteHandler *handlers.InviteHandler,
	rsvpHandler *handlers.RSVPHandler,
) {
	// Uploaded event covers
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public events listing is the one read exempt from the session gate
	api.Get("/events/public", eventHandler.Public)

	// Auth routes are public but get a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/password-login", authHandler.PasswordLogin)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below requires a verified session
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/contacts/import", contactHandler.Import)
	protected.Get("/contacts", contactHandler.List)

	protected.Post("/events", eventHandler.Create)
	protected.Get("/events/mine", eventHandler.Mine)
	protected.Get("/events/:id", eventHandler.GetByID)
	protected.Post("/events/:id/invites", inviteHandler.Dispatch)
	protected.Post("/events/:id/register", rsvpHandler.Register)
	protected.Put("/events/:id/rsvp", rsvpHandler.SetRSVP)

	protected.Post("/attendees/names", rsvpHandler.ResolveNames)
}
