package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort           string
	AppEnv            string
	DatabaseURL       string
	JWTSecret         string
	TokenExpires      time.Duration
	UploadDir         string
	ClientOrigin      string
	TelegramBotToken  string
	TelegramAdminChat string
}

// Load reads environment variables and returns a populated Config. The
// database URL and token secret have no fallbacks: a deployment without them
// is misconfigured and must not start.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "5000"),
		AppEnv:            getEnv("APP_ENV", "development"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenExpires:      getEnvDuration("JWT_TTL_HOURS", 720) * time.Hour,
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChat: getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
