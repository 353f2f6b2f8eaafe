package storage

import (
	"time"

	"github.com/maisonkart/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm persists state records in Postgres, one row per (session, key).
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Get(sessionID, key string) ([]byte, error) {
	var record models.StateRecord
	err := s.db.Where("session_id = ? AND key = ?", sessionID, key).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record.Value, nil
}

func (s *Gorm) Set(sessionID, key string, value []byte) error {
	record := models.StateRecord{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}
