package main

import (
	"lostfound_portal/internal/config" // Custom import path (Config)
	"lostfound_portal/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Open the SQLite database file and create the schema
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	db.Migrate(gdb)
}
