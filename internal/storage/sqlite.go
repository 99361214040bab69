package storage

import (
	"errors"

	"savoia/internal/configuration"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StoredToken is the single-row key/value layout backing the token store.
type StoredToken struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (StoredToken) TableName() string { return "tokens" }

type SQLiteTokenStore struct {
	db *gorm.DB
}

func NewSQLiteTokenStore(path string) (*SQLiteTokenStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err = db.AutoMigrate(&StoredToken{}); err != nil {
		return nil, err
	}
	return &SQLiteTokenStore{db: db}, nil
}

func (s *SQLiteTokenStore) Get() string {
	var row StoredToken
	result := s.db.Where("key = ?", configuration.TokenStorageKey).First(&row)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			zap.L().Error("Failed to read stored token", zap.Error(result.Error))
		}
		return ""
	}
	return row.Value
}

func (s *SQLiteTokenStore) Set(token string) {
	row := StoredToken{Key: configuration.TokenStorageKey, Value: token}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row)
	if result.Error != nil {
		zap.L().Error("Failed to persist token", zap.Error(result.Error))
	}
}

func (s *SQLiteTokenStore) Remove() {
	result := s.db.Where("key = ?", configuration.TokenStorageKey).Delete(&StoredToken{})
	if result.Error != nil {
		zap.L().Error("Failed to remove stored token", zap.Error(result.Error))
	}
}

var _ ITokenStore = (*SQLiteTokenStore)(nil)
