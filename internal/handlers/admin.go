package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/offerme/offerme-backend/internal/models"
	"github.com/offerme/offerme-backend/internal/storage"
)

// AdminHandler handles admin operations on the bot profile
type AdminHandler struct {
	store storage.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ProfileRequest is the admin document that replaces the stored profile
type ProfileRequest struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// GetProfile renders the current company profile, falling back to the default
// pair when none has been saved yet
func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.store.GetProfile()
	if err != nil {
		profile = models.DefaultProfile()
	}

	return c.JSON(fiber.Map{
		"company_name": profile.CompanyName,
		"description":  profile.Description,
	})
}

// UpdateProfile fully replaces the stored profile document. Empty or
// malformed submissions are rejected with no state change; there is no merge
// with the previous fields.
func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body is required",
		})
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.CompanyName == "" && req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Profile document cannot be empty",
		})
	}

	profile := &models.BotProfile{
		CompanyName: req.CompanyName,
		Description: req.Description,
	}
	if err := h.store.SaveProfile(profile); err != nil {
		log.Printf("❌ Failed to save profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	log.Printf("✅ Bot profile updated: %s", profile.CompanyName)
	return c.JSON(fiber.Map{
		"success": true,
		"profile": fiber.Map{
			"company_name": profile.CompanyName,
			"description":  profile.Description,
		},
	})
}
