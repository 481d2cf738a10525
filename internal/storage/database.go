package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/offerme/offerme-backend/internal/models"
)

// profileID pins the BotProfile table to a single row.
const profileID = 1

// DatabaseStore implements Store using PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Template ledger operations

func (s *DatabaseStore) HasReceivedTemplate(sender string) (bool, error) {
	var entry models.TemplateLog
	err := s.db.Where("sender = ?", sender).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LogTemplateSent upserts the ledger entry for a sender. Last write wins; in
// the normal flow each sender is only ever written once.
func (s *DatabaseStore) LogTemplateSent(sender string) error {
	entry := models.TemplateLog{
		Sender: sender,
		SentAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sender"}},
		DoUpdates: clause.AssignmentColumns([]string{"sent_at"}),
	}).Create(&entry).Error
}

func (s *DatabaseStore) CountTemplateLogs() (int64, error) {
	var count int64
	err := s.db.Model(&models.TemplateLog{}).Count(&count).Error
	return count, err
}

// Profile operations

func (s *DatabaseStore) GetProfile() (*models.BotProfile, error) {
	var profile models.BotProfile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile fully replaces the stored profile document. No merge with the
// previous fields.
func (s *DatabaseStore) SaveProfile(profile *models.BotProfile) error {
	profile.ID = profileID
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// Lead operations

func (s *DatabaseStore) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if err := s.db.Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *DatabaseStore) GetLeadsSince(since time.Time) ([]*models.Lead, error) {
	var leads []*models.Lead
	err := s.db.Where("created_at >= ?", since).Order("created_at asc").Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *DatabaseStore) CountLeads() (int64, error) {
	var count int64
	err := s.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}
