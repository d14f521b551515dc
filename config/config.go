package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	AdminAPIKey string
	Env         string
}

// Load reads an optional .env file and the process environment.
// An empty DatabaseURL means a local sqlite file.
func Load() *Config {
	// .env is optional; production supplies real env variables.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		Env:         getEnv("ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
