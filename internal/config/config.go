package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port           string
	RequestTimeout time.Duration

	// Reference data
	CatalogPath string
	ModelPath   string

	// Audit trail
	AuditDBPath string

	// Admin endpoints (catalog reload, log listing). Empty disables them.
	AdminAPIKey string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		CatalogPath: getEnv("CATALOG_PATH", "asset_information.csv"),
		ModelPath:   getEnv("MODEL_PATH", "model_svd.gob"),
		AuditDBPath: getEnv("AUDIT_DB_PATH", "finpro_audit.db"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	// Request timeout bounds total ranking latency, which grows with
	// catalog size on the warm path.
	timeoutStr := getEnv("REQUEST_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid REQUEST_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.RequestTimeout = timeout

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
