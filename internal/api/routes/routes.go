package routes

import (
	"covergen-utils/internal/api/handlers"
	"covergen-utils/internal/api/middleware"
	"covergen-utils/internal/background"
	"covergen-utils/internal/config"
	"covergen-utils/internal/pipeline"
	"covergen-utils/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, generator *pipeline.Generator, taskManager background.TaskManager, history *utils.RedisClient) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimit(cfg.Workers.RateLimit))
	// Async submission returns immediately, so it skips the request timeout
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, "/api/v1/letters/generate/async"))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(taskManager, history))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(generator, taskManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		letters := v1.Group("/letters")
		{
			letters.POST("/generate", handlers.GenerateLetterHandler(cfg, generator, history))
			letters.POST("/generate/async", handlers.GenerateLetterAsyncHandler(cfg, generator, taskManager))
			letters.GET("/:letter_id", handlers.GetLetterHandler(history))
		}

		resume := v1.Group("/resume")
		{
			resume.POST("/extract", handlers.ExtractResumeHandler(generator))
		}

		jobs := v1.Group("/jobs")
		{
			jobs.POST("/analyze", handlers.AnalyzeJobHandler(generator))
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", handlers.TaskListHandler(taskManager))
			tasks.GET("/:process_id", handlers.TaskStatusHandler(taskManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Covergen Letter Generator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
