package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	DBPath          string // Path to the SQLite database file
	JWTSecret       string // Secret key for signing session tokens
	SessionTTLHours int    // Session token lifetime in hours
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	ttl, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || ttl <= 0 {
		ttl = 24 // Default session lifetime
	}
	cfg := &Config{
		AppPort:         os.Getenv("APP_PORT"),          // Application port
		DBPath:          os.Getenv("DB_PATH"),           // SQLite database file
		JWTSecret:       os.Getenv("JWT_SECRET"),        // Session signing secret
		SessionTTLHours: ttl,                            // Session lifetime
		IsProd:          os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080" // Default port
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "lostfound.db" // Default database file
	}
	return cfg
}
