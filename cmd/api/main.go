package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creative-studio/backend/internal/ai"
	"github.com/creative-studio/backend/internal/config"
	"github.com/creative-studio/backend/internal/db"
	apphttp "github.com/creative-studio/backend/internal/http"
	"github.com/creative-studio/backend/internal/http/handlers"
	"github.com/creative-studio/backend/internal/repositories"
	"github.com/creative-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	campaignRepo := repositories.NewCampaignRepo(pool)
	headlineRepo := repositories.NewHeadlineRepo(pool)
	imageRepo := repositories.NewImageRepo(pool)
	creativeRepo := repositories.NewCreativeRepo(pool)

	// Oracle
	oracle := ai.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ChatModel, cfg.ImageModel, cfg.OpenAITimeout, log)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, headlineRepo, imageRepo, creativeRepo, log)
	headlineService := services.NewHeadlineService(campaignRepo, headlineRepo, oracle, cfg.HeadlineLanguage, cfg.MaxGenerateCount, log)
	imageService := services.NewImageService(campaignRepo, imageRepo, oracle, cfg.MaxGenerateCount, log)
	creativeService := services.NewCreativeService(campaignRepo, headlineRepo, imageRepo, creativeRepo, log)

	// Handlers
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	headlineHandler := handlers.NewHeadlineHandler(headlineService, log)
	imageHandler := handlers.NewImageHandler(imageService, log)
	creativeHandler := handlers.NewCreativeHandler(creativeService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, campaignHandler, headlineHandler, imageHandler, creativeHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
