package utils

import (
	"net/http"

	"fixify/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// SchedulingError maps a scheduling error onto the HTTP boundary with its
// machine-readable code. Upstream failures surface as 502, never as an
// empty slot list.
func SchedulingError(c *gin.Context, err error) {
	code := scheduling.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case scheduling.CodeValidation:
		status = http.StatusBadRequest
	case scheduling.CodeRemoteUnavailable,
		scheduling.CodeUnauthorized,
		scheduling.CodeNotFound:
		status = http.StatusBadGateway
	case scheduling.CodeConfiguration:
		status = http.StatusInternalServerError
	}
	Logger := GetLogger()
	Logger.Warn("scheduling error", zap.String("code", code), zap.Error(err))
	c.JSON(status, ErrorResponse{Code: code, Message: err.Error()})
}
