package config

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/postapi/internal/exception"
	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

func NewFiber(config *koanf.Koanf, log *zap.Logger) *fiber.App {
	bodyLimitMB := config.Int("BODY_LIMIT_MB")
	if bodyLimitMB <= 0 {
		bodyLimitMB = 4
	}

	app := fiber.New(fiber.Config{
		Prefork:               false,
		AppName:               config.String("OTEL_SERVICE_NAME"),
		BodyLimit:             bodyLimitMB * 1024 * 1024,
		ReadBufferSize:        8192,
		WriteBufferSize:       4096,
		Concurrency:           256 * 1024,
		IdleTimeout:           30 * time.Second,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		DisableKeepalive:      false,
		DisableStartupMessage: true,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          exception.ErrorHandler(log),
	})

	return app
}
