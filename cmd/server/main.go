package main

import (
	"context"
	"log"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/config"
	"github.com/forestgump22/tutorgo-frontend/internal/database"
	"github.com/forestgump22/tutorgo-frontend/internal/logging"
	"github.com/forestgump22/tutorgo-frontend/internal/observability"
	"github.com/forestgump22/tutorgo-frontend/internal/repository"
	"github.com/forestgump22/tutorgo-frontend/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer lg.Closer()

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.AppEnv, "")
	if err != nil {
		lg.Base.Warn("sentry init failed", zap.Error(err))
	}
	defer flushSentry()

	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		lg.Base.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, database.DB, lg.Base)

	go sessionJanitor(repository.NewSessionRepository(database.DB), lg.Base)

	lg.Base.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Base.Fatal("server failed to start", zap.Error(err))
	}
}

// sessionJanitor sweeps expired local sessions once an hour.
func sessionJanitor(sessions *repository.SessionRepository, lg *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		removed, err := sessions.DeleteExpired(ctx)
		cancel()
		if err != nil {
			lg.Warn("session sweep failed", zap.Error(err))
			continue
		}
		if removed > 0 {
			lg.Info("expired sessions removed", zap.Int64("count", removed))
		}
	}
}
