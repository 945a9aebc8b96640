package handlers

import (
	"net/http"
	"strconv"
	"time"

	"covergen-utils/internal/background"
	"covergen-utils/internal/logging"
	"covergen-utils/internal/pipeline"
	"covergen-utils/pkg/models"
	"covergen-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0", // TODO: Get from build info
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(taskManager background.TaskManager, history *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api":   "ok",
			"tasks": "ok",
		}
		status := "ready"
		code := http.StatusOK

		if taskManager != nil && !taskManager.IsHealthy() {
			checks["tasks"] = "unhealthy"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		}

		if history != nil {
			if err := history.IsHealthy(c.Request().Context()); err != nil {
				// Letter history is optional, readiness does not gate on it
				checks["redis"] = "unreachable"
			} else {
				checks["redis"] = "ok"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(generator *pipeline.Generator, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api":      "operational",
			"pipeline": "operational",
		}

		if taskManager != nil {
			if taskManager.IsHealthy() {
				checks["tasks"] = "operational"
			} else {
				checks["tasks"] = "degraded"
			}
		}

		if generator != nil {
			checks["extraction_cache"] = "operational"
			checks["extraction_cache_entries"] = strconv.Itoa(generator.CacheSize())
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}
