package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/offerme/offerme-backend/internal/models"
)

// MemoryStore holds all data in memory for testing
type MemoryStore struct {
	templateLog map[string]time.Time
	profile     *models.BotProfile
	leads       []*models.Lead

	// Mutexes for thread safety
	templateMu sync.RWMutex
	profileMu  sync.RWMutex
	leadMu     sync.RWMutex

	leadCounter uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		templateLog: make(map[string]time.Time),
	}
}

// Template ledger operations

func (m *MemoryStore) HasReceivedTemplate(sender string) (bool, error) {
	m.templateMu.RLock()
	defer m.templateMu.RUnlock()

	_, exists := m.templateLog[sender]
	return exists, nil
}

func (m *MemoryStore) LogTemplateSent(sender string) error {
	m.templateMu.Lock()
	defer m.templateMu.Unlock()

	m.templateLog[sender] = time.Now()
	return nil
}

func (m *MemoryStore) CountTemplateLogs() (int64, error) {
	m.templateMu.RLock()
	defer m.templateMu.RUnlock()

	return int64(len(m.templateLog)), nil
}

// Profile operations

func (m *MemoryStore) GetProfile() (*models.BotProfile, error) {
	m.profileMu.RLock()
	defer m.profileMu.RUnlock()

	if m.profile == nil {
		return nil, fmt.Errorf("profile not found")
	}
	profile := *m.profile
	return &profile, nil
}

func (m *MemoryStore) SaveProfile(profile *models.BotProfile) error {
	m.profileMu.Lock()
	defer m.profileMu.Unlock()

	stored := *profile
	m.profile = &stored
	return nil
}

// Lead operations

func (m *MemoryStore) CreateLead(lead *models.Lead) (*models.Lead, error) {
	m.leadMu.Lock()
	defer m.leadMu.Unlock()

	m.leadCounter++
	lead.ID = m.leadCounter
	lead.CreatedAt = time.Now()
	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *MemoryStore) GetLeadsSince(since time.Time) ([]*models.Lead, error) {
	m.leadMu.RLock()
	defer m.leadMu.RUnlock()

	var leads []*models.Lead
	for _, lead := range m.leads {
		if !lead.CreatedAt.Before(since) {
			leads = append(leads, lead)
		}
	}
	return leads, nil
}

func (m *MemoryStore) CountLeads() (int64, error) {
	m.leadMu.RLock()
	defer m.leadMu.RUnlock()

	return int64(len(m.leads)), nil
}
