package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API.
type ErrorCode string

const (
	ErrorCodeValidationFailed        ErrorCode = "VALIDATION_FAILED"
	ErrorCodeFieldCollectionNotFound ErrorCode = "FIELD_COLLECTION_NOT_FOUND"
	ErrorCodeInvalidJSON             ErrorCode = "INVALID_JSON"
	ErrorCodeCorpusUnavailable       ErrorCode = "CORPUS_UNAVAILABLE"
	ErrorCodeInternalError           ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// APIError represents a standardized API error response.
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	})
}

// SendValidationError sends a validation error with structured field details.
func SendValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{Field: err.Field, Message: err.Message}
	}
	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendFieldCollectionNotFoundError sends a 404 for an unknown field collection.
func SendFieldCollectionNotFoundError(c *gin.Context, name string) {
	SendError(c, http.StatusNotFound, ErrorCodeFieldCollectionNotFound, "field collection '"+name+"' not found")
}

// SendCorpusUnavailableError sends a 502 when the corpus provider fails.
func SendCorpusUnavailableError(c *gin.Context, err error) {
	SendError(c, http.StatusBadGateway, ErrorCodeCorpusUnavailable, err.Error())
}

// SendInternalError sends a 500 for unexpected internal failures.
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, operation+" failed: "+err.Error())
}
