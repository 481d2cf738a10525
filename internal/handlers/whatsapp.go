package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MessageProcessor routes one inbound message and returns the reply sent back
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, sender string, body string) (string, error)
}

// WhatsAppHandler handles WhatsApp webhook requests
type WhatsAppHandler struct {
	responder MessageProcessor
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(responder MessageProcessor) *WhatsAppHandler {
	return &WhatsAppHandler{responder: responder}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid          string `form:"MessageSid"`
	AccountSid          string `form:"AccountSid"`
	MessagingServiceSid string `form:"MessagingServiceSid"`
	From                string `form:"From"` // WhatsApp number (whatsapp:+97455555555)
	To                  string `form:"To"`   // Your Twilio number
	Body                string `form:"Body"` // Message text
	NumMedia            string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages. The webhook is always
// acknowledged with 200 regardless of downstream failures, so Twilio does not
// retry deliveries into an already-failing backend.
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	body := strings.TrimSpace(payload.Body)
	from := strings.TrimPrefix(payload.From, "whatsapp:")

	log.Printf("📱 WhatsApp message from %s: %s", from, body)

	// Process only incoming messages (not status updates)
	if body != "" && from != "" {
		if _, err := h.responder.ProcessMessage(c.UserContext(), from, body); err != nil {
			log.Printf("Error processing message from %s: %v", from, err)
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the JSON body of the development test endpoint
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test WhatsApp messages (for development)
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook received from %s: %s", payload.From, payload.Message)

	reply, err := h.responder.ProcessMessage(c.UserContext(), payload.From, payload.Message)
	if err != nil {
		log.Printf("Error processing test message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reply":   reply,
	})
}
