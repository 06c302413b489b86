// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/legacyvault/internal/errors"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// detailer is implemented by errors that carry a list of user actionable problems,
// such as the violated password rules.
type detailer interface {
	Details() []string
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON error body.
// Unknown errors become a generic 500 and the full error is only logged.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Error:   "unauthorized",
			Message: "Authentication is required",
		}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{
			Error:   "forbidden",
			Message: "You don't have permission to access this resource",
		}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}

	var d detailer
	if statusCode < http.StatusInternalServerError && apperrors.As(err, &d) {
		errorResponse.Details = d.Details()
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleUnauthorizedGin writes a 401 with a caller supplied message. It is used where
// the message must stay identical regardless of which check failed.
func HandleUnauthorizedGin(c *gin.Context, message string, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("authentication failed", slog.String("path", c.FullPath()))
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}

// HandleValidationErrorGin writes a 400 Bad Request response for malformed or invalid request bodies.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	}

	var d detailer
	if apperrors.As(err, &d) {
		errorResponse.Details = d.Details()
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}
