package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
// It is built once in main and passed down explicitly.
type Config struct {
	Port      string
	DSN       string
	JWTSecret string
	UploadDir string

	// Optional schema features. A deployment may run without the GIS
	// or document tables; listings then degrade to empty results.
	EnableGIS       bool
	EnableDocuments bool
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:            envOr("PORT", "8080"),
		DSN:             os.Getenv("DB_DSN"),
		JWTSecret:       envOr("JWT_SECRET", "dev-secret"),
		UploadDir:       envOr("UPLOAD_DIR", "./uploads"),
		EnableGIS:       os.Getenv("ENABLE_GIS") != "false",
		EnableDocuments: os.Getenv("ENABLE_DOCUMENTS") != "false",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
