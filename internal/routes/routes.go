package routes

import (
	"time"

	"github.com/alvozap/backoffice/internal/config"
	"github.com/alvozap/backoffice/internal/handlers"
	"github.com/alvozap/backoffice/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	orderHandler *handlers.OrderHandler,
	channelHandler *handlers.ChannelHandler,
	assistantHandler *handlers.AssistantHandler,
	settingsHandler *handlers.SettingsHandler,
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

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid access token.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/auth/session", authHandler.Session)
	protected.Post("/auth/logout", authHandler.Logout)

	// Menu editor
	protected.Get("/categories", catalogHandler.ListCategories)
	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Put("/products/:id", catalogHandler.UpdateProduct)
	protected.Patch("/products/:id/availability", catalogHandler.ToggleAvailability)

	// Order board
	protected.Get("/orders", orderHandler.List)
	protected.Get("/orders/stats", orderHandler.Stats)
	protected.Post("/orders/:id/accept", orderHandler.Accept)
	protected.Post("/orders/:id/reject", orderHandler.Reject)
	protected.Post("/orders/:id/dispatch", orderHandler.Dispatch)
	protected.Post("/orders/:id/deliver", orderHandler.ConfirmDelivery)
	protected.Post("/orders/:id/undo-delivery", orderHandler.UndoDelivery)

	// WhatsApp channel
	protected.Get("/channel", channelHandler.Status)
	protected.Post("/channel/connect", channelHandler.Connect)
	protected.Post("/channel/disconnect", channelHandler.Disconnect)
	protected.Post("/channel/connecting", channelHandler.SetConnecting)

	// Assistant + settings
	protected.Get("/assistant", assistantHandler.Get)
	protected.Put("/assistant", assistantHandler.Update)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)
}
