package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis term cache (empty disables caching)
	RedisURL string

	// Slack
	SlackSigningSecret string

	// Resolution
	SimilarityThreshold int // minimum fuzzy-match score (0-100) for suggestions

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the admin UI

	// Seed glossary
	GlossaryFile string // Optional YAML file with seed terms
	SeedOnStart  bool   // Seed the glossary at startup (dev convenience)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:         getEnv("DATABASE_URL", "postgres://localhost:5432/whatis?sslmode=disable"),
		RedisURL:            getEnv("REDIS_URL", ""),
		SlackSigningSecret:  getEnv("SLACK_SIGNING_SECRET", ""),
		SimilarityThreshold: getEnvInt("SIMILARITY_THRESHOLD", 80),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),
		GlossaryFile:        getEnv("GLOSSARY_FILE", "glossary.yaml"),
		SeedOnStart:         getEnv("SEED_ON_START", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
