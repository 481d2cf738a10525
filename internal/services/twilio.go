package services

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/offerme/offerme-backend/internal/config"
)

// TwilioService sends WhatsApp messages via the Twilio REST API
type TwilioService struct {
	client              *twilio.RestClient
	from                string // Format: "whatsapp:+14155238886"
	messagingServiceSID string
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService(cfg *config.Config) (*TwilioService, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}
	if cfg.TwilioWhatsAppFrom == "" && cfg.TwilioMessagingServiceSID == "" {
		return nil, fmt.Errorf("either TWILIO_WHATSAPP_FROM or TWILIO_MESSAGING_SERVICE_SID must be set")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &TwilioService{
		client:              client,
		from:                cfg.TwilioWhatsAppFrom,
		messagingServiceSID: cfg.TwilioMessagingServiceSID,
	}, nil
}

// SendWhatsAppMessage sends a freeform WhatsApp message via Twilio
func (t *TwilioService) SendWhatsAppMessage(to string, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(body)
	t.setSender(params)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp message sent! SID: %s", *resp.Sid)
	return nil
}

// SendWhatsAppTemplate sends an approved WhatsApp template message via Twilio
func (t *TwilioService) SendWhatsAppTemplate(to string, contentSID string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetContentSid(contentSID)
	t.setSender(params)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp template: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp template sent! SID: %s, Template: %s", *resp.Sid, contentSID)
	return nil
}

// setSender fills either the messaging service SID or the from number.
// Twilio requires exactly one of the two.
func (t *TwilioService) setSender(params *twilioApi.CreateMessageParams) {
	if t.messagingServiceSID != "" {
		params.SetMessagingServiceSid(t.messagingServiceSID)
		return
	}
	params.SetFrom(t.from)
}
