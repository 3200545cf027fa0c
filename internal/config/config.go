package config

import (
	"errors"
	"os"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	StorageBackend string
	JSONPath       string
	SQLitePath     string
	PostgresDSN    string

	JWTSecret string

	AIProvider string

	CatalogBaseURL string
	CatalogAPIKey  string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		StorageBackend: getEnvOrDefault("STORAGE_BACKEND", BackendJSON),
		JSONPath:       getEnvOrDefault("JSON_STORE_PATH", "data/gametracker.json"),
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "data/gametracker.db"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev"),
		AIProvider:     getEnvOrDefault("AI_PROVIDER", "gemini"),
		CatalogBaseURL: os.Getenv("CATALOG_BASE_URL"),
		CatalogAPIKey:  os.Getenv("CATALOG_API_KEY"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	switch config.StorageBackend {
	case BackendJSON, BackendSQLite:
	case BackendPostgres:
		if config.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND is postgres")
		}
	default:
		return errors.New("unsupported storage backend: " + config.StorageBackend + ". Supported: json, sqlite, postgres")
	}
	if config.AIProvider != "gemini" {
		return errors.New("unsupported AI provider: " + config.AIProvider + ". Currently supported: gemini")
	}
	// Gemini credentials are validated by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
