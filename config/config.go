package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Server settings
	AppPort     string
	Host        string
	DatabaseURL string

	// JWT settings
	JWTSecret     string
	JWTExpiration string

	// Media storage
	UploadDir string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	config := &Config{
		AppPort:     envOrDefault("PORT", "8080"),
		Host:        envOrDefault("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: envOrDefault("JWT_EXPIRES_IN", "72h"),

		UploadDir: envOrDefault("UPLOAD_DIR", "./uploads"),
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
