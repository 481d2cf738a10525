package models

import (
	"gorm.io/gorm"
)

// BotProfile is the singleton company document injected into the assistant's
// system instruction. Edited through the admin endpoint, read on every
// completion call.
type BotProfile struct {
	gorm.Model
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// DefaultProfile returns the hardcoded fallback pair used when the stored
// profile is missing or unreadable.
func DefaultProfile() *BotProfile {
	return &BotProfile{
		CompanyName: "Offer ME",
		Description: "شركة متخصصة في العروض التسويقية وخدمة العملاء عبر واتساب.",
	}
}
