package storage

import (
	"time"

	"github.com/offerme/offerme-backend/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Template ledger operations
	HasReceivedTemplate(sender string) (bool, error)
	LogTemplateSent(sender string) error
	CountTemplateLogs() (int64, error)

	// Profile operations
	GetProfile() (*models.BotProfile, error)
	SaveProfile(profile *models.BotProfile) error

	// Lead operations
	CreateLead(lead *models.Lead) (*models.Lead, error)
	GetLeadsSince(since time.Time) ([]*models.Lead, error)
	CountLeads() (int64, error)
}
