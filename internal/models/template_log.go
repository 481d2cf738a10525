package models

import (
	"time"

	"gorm.io/gorm"
)

// TemplateLog records that the approved opening template was sent to a sender.
// Presence of a row means the template went out at least once; rows are never
// deleted.
type TemplateLog struct {
	gorm.Model
	Sender string    `json:"sender" gorm:"uniqueIndex;not null"`
	SentAt time.Time `json:"sent_at" gorm:"not null"`
}
