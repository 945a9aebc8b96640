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

// AnalyzeJobHandler handles standalone job description analysis requests.
func AnalyzeJobHandler(generator *pipeline.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Job analysis request received")

		var req models.AnalyzeJobRequest
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

		// A stored extraction takes precedence over raw resume text
		var info models.ResumeInfo
		if req.ResumeInfo != nil {
			info = *req.ResumeInfo
		} else if req.ResumeText != "" {
			info = generator.ExtractResume(req.ResumeText, nil)
		}

		analysis := generator.AnalyzeJob(req.JobDescription, info)

		logger.WithFields(map[string]interface{}{
			"requirements_found": len(analysis.Requirements),
			"matched_skills":     len(analysis.MatchedSkills),
		}).Info("Job analysis completed")

		return c.JSON(http.StatusOK, models.AnalyzeJobResponse{
			Success:     true,
			JobAnalysis: analysis,
			RequestID:   requestID,
		})
	}
}
