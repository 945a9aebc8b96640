package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"covergen-utils/internal/api/validation"
	"covergen-utils/internal/background"
	"covergen-utils/internal/config"
	"covergen-utils/internal/logging"
	"covergen-utils/internal/pipeline"
	"covergen-utils/pkg/models"
	"covergen-utils/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterLetterValidators(v)
	return v
}

// GenerateLetterHandler handles synchronous cover letter generation
func GenerateLetterHandler(cfg *config.Config, generator *pipeline.Generator, history *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Letter generation request received")

		var req models.GenerateLetterRequest
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

		logger.WithFields(map[string]interface{}{
			"company":        req.Job.CompanyName,
			"job_title":      req.Job.JobTitle,
			"template_style": pipeline.NormalizeStyle(req.TemplateStyle),
		}).Info("Processing letter generation request")

		letter, info, analysis := generator.GenerateLetter(&req, time.Now())

		record := &models.GenerationRecord{
			LetterID:      utils.GenerateLetterID(),
			CoverLetter:   letter,
			TemplateStyle: pipeline.NormalizeStyle(req.TemplateStyle),
			Job:           req.Job,
			ResumeInfo:    info,
			JobAnalysis:   analysis,
			GeneratedAt:   time.Now(),
		}

		if history != nil {
			if err := history.SaveGenerationRecord(c.Request().Context(), record); err != nil {
				logger.Warn("Failed to persist generation record", map[string]interface{}{
					"letter_id": record.LetterID,
					"error":     err.Error(),
				})
			}
		}

		response := models.GenerateLetterResponse{
			Success:        true,
			LetterID:       record.LetterID,
			CoverLetter:    letter,
			TemplateStyle:  record.TemplateStyle,
			ResumeInfo:     &info,
			JobAnalysis:    &analysis,
			ProcessingTime: time.Since(start),
			RequestID:      requestID,
		}

		logger.WithFields(map[string]interface{}{
			"letter_id":       record.LetterID,
			"processing_time": time.Since(start),
			"letter_length":   len(letter),
		}).Info("Letter generation completed successfully")

		return c.JSON(http.StatusOK, response)
	}
}

// GenerateLetterAsyncHandler handles asynchronous cover letter generation
func GenerateLetterAsyncHandler(cfg *config.Config, generator *pipeline.Generator, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Async letter generation request received")

		var req models.GenerateLetterRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"invalid_request", "Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"validation_failed", utils.NewValidationError(err.Error()).Error()))
		}

		processID := utils.GenerateProcessID()

		if err := taskManager.SubmitGenerateTask(c.Request().Context(), processID, req, generator); err != nil {
			logger.Error("Failed to submit generation task", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusServiceUnavailable, models.CreateAsyncErrorResponse(
				"task_submission_failed", "Unable to accept generation request right now", processID))
		}

		logger.WithFields(map[string]interface{}{
			"process_id": processID,
			"company":    req.Job.CompanyName,
			"job_title":  req.Job.JobTitle,
		}).Info("Letter generation task accepted")

		return c.JSON(http.StatusAccepted, models.CreateAsyncGenerateResponse(processID))
	}
}

// GetLetterHandler retrieves a previously generated letter by its ID
func GetLetterHandler(history *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		letterID := c.Param("letter_id")
		if err := validate.Var(letterID, "letter_id"); err != nil {
			logger.Error("Invalid letter ID", map[string]interface{}{"letter_id": letterID})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_letter_id",
				Message:   "Letter ID must match the format ltr_<id>",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if history == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:     "history_unavailable",
				Message:   "Letter history storage is not configured",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		record, err := history.GetGenerationRecord(c.Request().Context(), letterID)
		if err != nil {
			logger.Warn("Letter lookup failed", map[string]interface{}{
				"letter_id": letterID,
				"error":     err.Error(),
			})

			var cerr *utils.CustomError
			if errors.As(err, &cerr) && cerr.Code == http.StatusNotFound {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error:     "letter_not_found",
					Message:   "No stored letter with that ID",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "history_error",
				Message:   "Failed to load the stored letter",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, record)
	}
}
