package config

import (
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var defaults = map[string]any{
	"GO_SERVER":            ":8000",
	"APP_URL":              "http://localhost:8000",
	"LOG_LEVEL":            "info",
	"DB_DRIVER":            DriverPostgres,
	"SQLITE_PATH":          "postapi.db",
	"STORAGE_DRIVER":       "local",
	"STORAGE_LOCAL_ROOT":   "storage/app/public",
	"JWT_ACCESS_TOKEN_TTL": "60m",
	"CORS_ALLOW_ORIGINS":   "http://localhost:3000, http://localhost:8080",
	"BODY_LIMIT_MB":        4,
	"OTEL_SERVICE_NAME":    "postapi",
	"ENVIRONMENT":          "development",
}

func NewKoanf(log *zap.Logger) *koanf.Koanf {
	k := koanf.New(".")

	for key, value := range defaults {
		_ = k.Set(key, value)
	}

	// Load from .env file if available (for local development)
	err := k.Load(file.Provider(".env"), dotenv.Parser())
	if err != nil {
		log.Debug(".env file not found, using environment variables", zap.Error(err))
	}

	// Environment variables override .env values
	err = k.Load(env.Provider("", ".", nil), nil)
	if err != nil {
		log.Fatal("failed to load environment variables", zap.Error(err))
	}

	return k
}
