package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope every endpoint answers with. Count is present
// on multi-row endpoints only; Filters only on the filtered listing.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Filters interface{} `json:"filters,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func RespondList(c *gin.Context, data interface{}, count int, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
		Message: message,
	})
}

func RespondListing(c *gin.Context, data interface{}, count int, filters interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
		Filters: filters,
	})
}

func RespondError(c *gin.Context, code int, errText string, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   errText,
		Message: message,
	})
}

// HandleServiceError maps a service failure onto the error taxonomy:
// validation 400, not found 404, everything else 500. Data-access failures
// keep the underlying message for diagnostics.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidEventID):
		RespondError(c, http.StatusBadRequest, "Invalid event ID format", "")
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, "Event not found", "")
	case errors.Is(err, ErrDatabaseError):
		logger.Error("data access failure", zap.String("path", c.Request.URL.Path), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Failed to execute query", err.Error())
	default:
		logger.Error("unexpected failure", zap.String("path", c.Request.URL.Path), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
