package main

import (
	"log"  // log package is needed for logging
	"os"   // For checking whether the database file exists
	"time" // Session lifetime

	"lostfound_portal/internal/api"     // Custom package for route handlers
	"lostfound_portal/internal/config"  // Custom package for configuration
	"lostfound_portal/internal/db"      // Custom package for the database
	"lostfound_portal/internal/session" // Custom package for sessions
	"lostfound_portal/internal/store"   // Custom package for the stores

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The schema is created on first run, before the server accepts requests
	_, statErr := os.Stat(cfg.DBPath)
	firstRun := os.IsNotExist(statErr)

	// Open the SQLite database (the file is created if absent)
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if firstRun {
		db.Migrate(gdb) // Create the users and items tables
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set") // Refuse to sign sessions with an empty secret
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Construct the stores and session manager
	users := store.NewUserStore(gdb)   // Credential store
	items := store.NewItemStore(gdb)   // Item store
	sessions := session.NewManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Setup Gin with all routes
	r := api.NewRouter(users, items, sessions)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
