package http

import (
	"time"

	"github.com/creative-studio/backend/internal/config"
	"github.com/creative-studio/backend/internal/http/handlers"
	"github.com/creative-studio/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	campaignHandler *handlers.CampaignHandler,
	headlineHandler *handlers.HeadlineHandler,
	imageHandler *handlers.ImageHandler,
	creativeHandler *handlers.CreativeHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Campaigns
	app.Post("/campaigns", campaignHandler.CreateCampaign)
	app.Get("/campaigns", campaignHandler.ListCampaigns)

	// Generation endpoints cost an oracle call each; the POSTs sit behind
	// the redis rate limiter.
	generate := middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute)
	app.Post("/ai/headlines/generate", generate, headlineHandler.GenerateHeadlines)
	app.Get("/ai/headlines/generate", headlineHandler.ListHeadlines)
	app.Post("/ai/images/generate", generate, imageHandler.GenerateImages)
	app.Get("/ai/images/generate", imageHandler.ListImages)

	// Creatives
	app.Post("/creatives", creativeHandler.CreatePair)
	app.Get("/creatives", creativeHandler.ListPairs)
	app.Delete("/creatives/:id", creativeHandler.DeletePair)
}
