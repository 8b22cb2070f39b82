// File: internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	CORSOrigins   []string
	StaticDir     string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	LogLevel      slog.Level
}

const defaultCORSOrigins = "http://localhost:3000,http://localhost:5173"

var loadDotenv = godotenv.Load

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
	}

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CORSOrigins:   splitList(getEnvOrDefault("CORS_ORIGINS", defaultCORSOrigins)),
		StaticDir:     getEnvOrDefault("STATIC_DIR", "./static"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
		AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", "admin@portfolio.local"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("環境變數 SESSION_SECRET 未設定")
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnvOrDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnvOrDefault("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("無效的 SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("無效的 SESSION_TTL: must be positive")
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnvOrDefault("COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("無效的 COOKIE_SECURE: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnvOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("無效的 LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string { return ":" + c.Port }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
