package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ferdian3456/postapi/internal/config"
	"github.com/ferdian3456/postapi/internal/delivery/http/middleware"
	"github.com/ferdian3456/postapi/internal/exception"
	"github.com/ferdian3456/postapi/internal/observability"
	"github.com/ferdian3456/postapi/internal/repository"
	tracelogger "github.com/ferdian3456/postapi/internal/middleware"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2/middleware/compress"
	zapLog "go.uber.org/zap"
)

func main() {
	time.Local = time.UTC

	zap := config.NewZap()
	koanf := config.NewKoanf(zap)
	config.SetLogLevel(koanf, zap)

	shutdownTracer, err := observability.Init(context.Background(), config.LoadObservabilityConfig(koanf, zap), zap)
	if err != nil {
		zap.Fatal("failed to initialize tracing", zapLog.Error(err))
	}

	database := config.NewDatabase(koanf, zap)
	err = config.RunMigration(database, koanf, zap)
	if err != nil {
		zap.Fatal("failed to migrate database", zapLog.Error(err))
	}

	rds := config.NewRedisClient(koanf, zap)
	disk := config.NewDisk(koanf, zap)
	fiber := config.NewFiber(koanf, zap)

	// Custom recovery middleware to handle panics with JSON response
	fiber.Use(exception.Recovery(zap))
	fiber.Use(otelfiber.Middleware())
	fiber.Use(tracelogger.TraceLoggerMiddleware(zap))
	fiber.Use(middleware.SetupCORS(koanf))
	fiber.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	config.Server(&config.ServerConfig{
		Router:     fiber,
		PostStore:  database.PostStore(zap),
		UserStore:  database.UserStore(zap),
		TokenStore: repository.NewTokenRepository(zap, rds),
		Disk:       disk,
		Log:        zap,
		Config:     koanf,
	})

	GO_SERVER_PORT := koanf.String("GO_SERVER")

	zap.Info("Server is running on: " + GO_SERVER_PORT)

	go func() {
		err := fiber.Listen(GO_SERVER_PORT)
		if err != nil {
			zap.Fatal("error starting server", zapLog.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	zap.Info("got one of stop signals")

	// Flush zap buffered log first then cancel the context for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = fiber.ShutdownWithContext(ctx)
	if err != nil {
		zap.Warn("timeout, forced kill!", zapLog.Error(err))
		_ = zap.Sync()
		os.Exit(1)
	}

	database.Close()
	_ = rds.Close()

	err = shutdownTracer(ctx)
	if err != nil {
		zap.Warn("failed to flush traces", zapLog.Error(err))
	}

	zap.Info("server has shut down gracefully")
	_ = zap.Sync()
}
