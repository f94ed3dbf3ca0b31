// Package database manages the embedded SQLite database backing the
// recommendation audit trail.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"finpro/internal/models"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens (or creates) the SQLite database at the given path.
func NewManager(path string) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	return &Manager{db: db}, nil
}

// Migrate creates or updates the audit schema.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(&models.RecommendationLog{}); err != nil {
		return fmt.Errorf("failed to migrate audit schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
