package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"covergen-utils/internal/background"
	"covergen-utils/internal/logging"
	"covergen-utils/pkg/models"
	"covergen-utils/pkg/utils"
)

// taskResultToResponse converts an internal task result to the API shape
func taskResultToResponse(result *background.TaskResult) models.AsyncTaskStatusResponse {
	response := models.AsyncTaskStatusResponse{
		ProcessID:      result.ProcessID,
		Status:         models.AsyncStatus(result.Status),
		Error:          result.Error,
		CreatedAt:      result.CreatedAt,
		CompletedAt:    result.CompletedAt,
		ProcessingTime: result.ProcessingTime,
		Metadata:       result.Metadata,
	}

	if data, ok := result.Data.(*background.GenerateTaskData); ok {
		response.Data = &models.AsyncGenerateCompletionData{Letter: data.Letter}
	} else if result.Data != nil {
		response.Data = result.Data
	}

	return response
}

// TaskStatusHandler returns the status of a background task by process ID
func TaskStatusHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		processID := c.Param("process_id")
		if processID == "" {
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"invalid_process_id", "Process ID is required"))
		}

		result, err := taskManager.GetTaskResult(c.Request().Context(), processID)
		if err != nil {
			logger.Warn("Task not found", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusNotFound, models.CreateAsyncErrorResponse(
				"task_not_found", "No task with that process ID", processID))
		}

		return c.JSON(http.StatusOK, taskResultToResponse(result))
	}
}

// TaskListHandler lists all known background tasks
func TaskListHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		results, err := taskManager.ListTasks(c.Request().Context())
		if err != nil {
			logger.Error("Failed to list tasks", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.CreateAsyncErrorResponse(
				"task_list_failed", "Unable to list background tasks"))
		}

		tasks := make([]models.AsyncTaskStatusResponse, 0, len(results))
		for _, result := range results {
			tasks = append(tasks, taskResultToResponse(result))
		}

		return c.JSON(http.StatusOK, models.AsyncTaskListResponse{
			Success: true,
			Tasks:   tasks,
			Count:   len(tasks),
		})
	}
}
