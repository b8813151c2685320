package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	RespondError(c, code, message)
	c.Abort()
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCountry):
		RespondError(c, http.StatusBadRequest, "Please enter a country name.")
	case errors.Is(err, ErrInvalidTripLength):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidInterests):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPace):
		RespondError(c, http.StatusBadRequest, "Pace must be relaxed, balanced or fast")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrNoPoisFound):
		RespondError(c, http.StatusNotFound, "No POIs found for this country")
	case errors.Is(err, ErrPOINotFound):
		RespondError(c, http.StatusNotFound, "POI not found")
	case errors.Is(err, ErrCatalogReadOnly):
		RespondError(c, http.StatusConflict, "POI catalog is read only with the demo source")
	case errors.Is(err, ErrProviderFailure):
		zap.L().Error("POI provider failure", zap.Error(err), zap.String("trace_id", traceIDFrom(c)))
		RespondError(c, http.StatusBadGateway, "POI provider unavailable")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("Database error", zap.Error(err), zap.String("trace_id", traceIDFrom(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("Unknown error", zap.Error(err), zap.String("trace_id", traceIDFrom(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
