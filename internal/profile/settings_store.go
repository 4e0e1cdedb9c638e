package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"techparts-store/internal/domain"
)

// settingsKey is the single fixed key the serialized profile lives under.
const settingsKey = "storeInfo"

// Setting is one row of the local settings file.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

// SettingsStore keeps the store profile in a local SQLite file, the durable
// stand-in for the browser-local storage of the reference implementation.
type SettingsStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// OpenSettingsStore opens (creating if needed) the settings file at path.
func OpenSettingsStore(path string, logger *zap.Logger) (*SettingsStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings store: %w", err)
	}

	return &SettingsStore{db: db, logger: logger}, nil
}

// Load reads the stored profile. A missing row or a row that does not parse
// reports no usable record so the caller keeps the compiled-in default; a
// malformed record is logged but never treated as a failure.
func (s *SettingsStore) Load() (domain.StoreProfile, bool, error) {
	var row Setting
	err := s.db.First(&row, "key = ?", settingsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.StoreProfile{}, false, nil
	}
	if err != nil {
		return domain.StoreProfile{}, false, fmt.Errorf("failed to read settings: %w", err)
	}

	var profile domain.StoreProfile
	if err := json.Unmarshal([]byte(row.Value), &profile); err != nil {
		s.logger.Warn("Stored profile record is malformed, falling back to defaults",
			zap.String("key", settingsKey),
			zap.Error(err),
		)
		return domain.StoreProfile{}, false, nil
	}

	return profile, true, nil
}

// Save serializes the profile and overwrites the record under the fixed key.
func (s *SettingsStore) Save(profile domain.StoreProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	row := Setting{Key: settingsKey, Value: string(raw)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SettingsStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
