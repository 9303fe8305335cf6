package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	SessionSecret  string
	SessionTTL     time.Duration
	SessionBackend string
	RedisAddr      string
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskboard?parseTime=true"),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionTTL:     7 * 24 * time.Hour,
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.Env == "production" && cfg.SessionSecret == "dev-secret-change-in-production" {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
