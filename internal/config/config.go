package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	Port         string
	DBConnString string
	JWTSecret    string
	IsProd       bool
}

// Load reads the .env file if present and builds the configuration from
// the environment. JWT_SECRET and DB_CONNECTION_STRING are mandatory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		Port:         fallback(os.Getenv("PORT"), "8080"),
		DBConnString: strings.TrimSpace(os.Getenv("DB_CONNECTION_STRING")),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		IsProd:       os.Getenv("ENV") == "production",
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("no JWT_SECRET provided")
	}
	if cfg.DBConnString == "" {
		return nil, errors.New("no DB_CONNECTION_STRING provided")
	}

	return cfg, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
