package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/offerme/offerme-backend/internal/config"
	"github.com/offerme/offerme-backend/internal/handlers"
	"github.com/offerme/offerme-backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	whatsappHandler *handlers.WhatsAppHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Root endpoint with service overview
	app.Get("/", healthHandler.Overview)

	// Health check
	app.Get("/health", healthHandler.Check)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// WhatsApp webhook - environment-aware signature validation
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip validation for ngrok
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(cfg.TwilioAuthToken), whatsappHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)

	// ========== ADMIN ROUTES ==========
	admin := app.Group("/admin")
	admin.Get("/profile", adminHandler.GetProfile)
	admin.Post("/profile", adminHandler.UpdateProfile)
}
