package models

import (
	"gorm.io/gorm"
)

// Lead is a potential customer captured when an inbound message matched an
// escalation trigger (contact details shared in chat).
type Lead struct {
	gorm.Model
	Sender  string `json:"sender" gorm:"index;not null"`
	Message string `json:"message"`
	Reply   string `json:"reply"`
}
