// Package api wraps the search service in an HTTP query surface: GET
// /packages for search, POST /packages/rebuild for administrative
// resnapshots, and /metrics for Prometheus scraping.
package api

import "strings"

// ValidationError represents a validation error with field context.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateFieldCollectionName validates a field collection name supplied at
// startup, before it is handed to engine.Engine.Register.
func ValidateFieldCollectionName(name string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if name == "" {
		result.AddError("fieldCollection", "field collection name is required")
		return result
	}
	if strings.TrimSpace(name) != name {
		result.AddError("fieldCollection", "field collection name cannot have leading or trailing whitespace")
	}
	return result
}
