package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerme/offerme-backend/internal/storage"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version string
	store   storage.Store
	dbPing  func() error // nil when running on the memory store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, store storage.Store, dbPing func() error) *HealthHandler {
	return &HealthHandler{
		Version: version,
		store:   store,
		dbPing:  dbPing,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	dbHealthy := true
	if h.dbPing != nil && h.dbPing() != nil {
		dbHealthy = false
		status = "unhealthy"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": dbHealthy,
		},
	})
}

// Overview returns service information and storage counters
func (h *HealthHandler) Overview(c *fiber.Ctx) error {
	response := fiber.Map{
		"service": "OfferMe WhatsApp Backend",
		"version": h.Version,
		"status":  "healthy",
		"endpoints": fiber.Map{
			"health":  "/health",
			"webhook": "/webhook/whatsapp",
			"admin":   "/admin/profile",
		},
	}

	if h.store != nil {
		templates, err := h.store.CountTemplateLogs()
		if err == nil {
			leads, _ := h.store.CountLeads()
			response["storage"] = fiber.Map{
				"templates_sent": templates,
				"leads":          leads,
			}
		}
	}

	return c.JSON(response)
}
