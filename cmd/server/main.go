package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pratikrath126/placement-predictor/internal/config"
	"github.com/pratikrath126/placement-predictor/internal/domain/fiber/handler"
	"github.com/pratikrath126/placement-predictor/internal/logger"
	"github.com/pratikrath126/placement-predictor/internal/middleware"
	"github.com/pratikrath126/placement-predictor/internal/repository"
	"github.com/pratikrath126/placement-predictor/internal/service"
	"github.com/pratikrath126/placement-predictor/internal/usecase"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog := logger.New(appConfig.LogLevel, appConfig.Env)
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			if code == fiber.StatusInternalServerError {
				zlog.Error("request failed", zap.Error(err), zap.String("path", ctx.Path()))
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// The training artifact feeds only the informational endpoints. When it
	// cannot be loaded, /predict must keep working.
	artifactRepo, err := repository.NewArtifactRepository(config.LoadModelConfig().Dir)
	if err != nil {
		zlog.Warn("model artifact unavailable, informational endpoints disabled", zap.Error(err))
		artifactRepo = nil
	}

	scoring := service.NewScoringService()
	advisory := service.NewAdvisoryService()
	uc := usecase.NewPredictionUsecase(scoring, advisory, artifactRepo)
	handler := handler.NewPredictHandler(uc, zlog)

	handler.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	zlog.Info("server starting", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
