package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"covergen-utils/internal/logging"
	"covergen-utils/internal/pipeline"
	"covergen-utils/pkg/models"
	"covergen-utils/pkg/utils"
)

// ExtractResumeHandler handles standalone resume extraction requests
func ExtractResumeHandler(generator *pipeline.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume extraction request received")

		var req models.ExtractResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   utils.NewValidationError(err.Error()).Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		info := generator.ExtractResume(req.ResumeText, req.Profile)

		logger.WithFields(map[string]interface{}{
			"name_found":   info.Name != "",
			"skills_found": len(info.Skills),
		}).Info("Resume extraction completed")

		return c.JSON(http.StatusOK, models.ExtractResumeResponse{
			Success:    true,
			ResumeInfo: info,
			RequestID:  requestID,
		})
	}
}
