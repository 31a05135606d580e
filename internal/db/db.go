package db

import (
	"lostfound_portal/internal/domain" // Importing domain models

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM
	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Open opens the SQLite database at the given path. The file is created on
// first use if it does not exist. TranslateError lets unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
}

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) {
	// AutoMigrate will create tables, missing constraints, columns and indexes
	err := gdb.AutoMigrate(&domain.User{}, &domain.Item{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
