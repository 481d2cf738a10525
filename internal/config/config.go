package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all process-wide settings. Loaded once at startup from the
// environment and treated as immutable afterwards.
type Config struct {
	Port string

	// Twilio
	TwilioAccountSID          string
	TwilioAuthToken           string
	TwilioWhatsAppFrom        string // Format: "whatsapp:+14155238886"
	TwilioMessagingServiceSID string
	TemplateContentSID        string // Approved opening template (ContentSid)

	// OpenRouter (OpenAI-compatible)
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string

	// Escalation email
	EmailSender   string
	EmailPassword string
	EmailReceiver string
	SMTPHost      string
	SMTPPort      int

	// Routing behavior
	EscalationTriggers []string
	SessionMaxTurns    int // 0 = unbounded transcript (legacy behavior)

	UseMemoryStore bool
}

// Load reads the configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		TwilioAccountSID:          os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:           os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom:        os.Getenv("TWILIO_WHATSAPP_FROM"),
		TwilioMessagingServiceSID: os.Getenv("TWILIO_MESSAGING_SERVICE_SID"),
		TemplateContentSID:        getEnv("TWILIO_TEMPLATE_CONTENT_SID", "HX20732d6109ed00a2d58bb95103bdc2f0"),
		OpenRouterAPIKey:          os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:         getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:           getEnv("OPENROUTER_MODEL", "openai/gpt-3.5-turbo"),
		EmailSender:               os.Getenv("EMAIL_SENDER"),
		EmailPassword:             os.Getenv("EMAIL_PASSWORD"),
		EmailReceiver:             os.Getenv("EMAIL_RECEIVER"),
		SMTPHost:                  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:                  getEnvInt("SMTP_PORT", 465),
		SessionMaxTurns:           getEnvInt("SESSION_MAX_TURNS", 0),
		UseMemoryStore:            os.Getenv("USE_MEMORY_STORE") == "true",
	}

	// Trigger substrings are matched literally against the raw inbound
	// message, case-sensitive, no normalization.
	if triggers := os.Getenv("ESCALATION_TRIGGERS"); triggers != "" {
		for _, t := range strings.Split(triggers, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.EscalationTriggers = append(cfg.EscalationTriggers, t)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
