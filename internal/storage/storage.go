package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Keys for the three persisted collections.
const (
	KeyCustomers = "customers"
	KeySessions  = "sessions"
	KeyTimers    = "timers"
)

// Snapshot is one named JSON document. Every save overwrites the whole
// value for its key; there is no incremental persistence.
type Snapshot struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// Storage is the local key-value store backing the domain store.
type Storage struct {
	db *gorm.DB
}

// Open opens (or creates) the database file and runs migrations.
func Open(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return open(path)
}

// OpenInMemory opens a throwaway database, used by tests.
func OpenInMemory() (*Storage, error) {
	return open(":memory:")
}

func open(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Storage{db: db}, nil
}

// Load decodes the snapshot stored under key into dest. A missing or
// unparsable snapshot is not an error: dest keeps whatever
// empty-collection default the caller initialized it with.
func (s *Storage) Load(key string, dest any) error {
	var snap Snapshot
	if err := s.db.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !json.Valid(snap.Value) {
		return nil
	}
	if err := json.Unmarshal(snap.Value, dest); err != nil {
		return nil
	}
	return nil
}

// Save overwrites the snapshot stored under key with the JSON encoding
// of v.
func (s *Storage) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	snap := Snapshot{Key: key, Value: raw}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot stored under key. Deleting an absent key
// is a no-op.
func (s *Storage) Delete(key string) error {
	if err := s.db.Delete(&Snapshot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
