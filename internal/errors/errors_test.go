package errors

import (
	"errors"
	"testing"
)

func TestFieldCollectionNotFoundError(t *testing.T) {
	err := NewFieldCollectionNotFoundError("packages")

	expectedMsg := "field collection named 'packages' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrFieldCollectionNotFound) {
		t.Error("Expected error to match ErrFieldCollectionNotFound sentinel")
	}
	if errors.Is(err, ErrInvalidPagination) {
		t.Error("Error should not match ErrInvalidPagination")
	}
}

func TestFieldCollectionAlreadyExistsError(t *testing.T) {
	err := NewFieldCollectionAlreadyExistsError("packages")

	expectedMsg := "field collection named 'packages' already exists"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrFieldCollectionAlreadyExists) {
		t.Error("Expected error to match ErrFieldCollectionAlreadyExists sentinel")
	}
}

func TestPaginationError(t *testing.T) {
	err := NewPaginationError("page", 0, "must be >= 1")

	expectedMsg := "invalid page (0): must be >= 1"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidPagination) {
		t.Error("Expected error to match ErrInvalidPagination sentinel")
	}
}

func TestCorpusUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewCorpusUnavailableError("packages", cause)

	expectedMsg := "corpus unavailable while rebuilding 'packages': connection refused"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Error("Expected error to match ErrCorpusUnavailable sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestSettingsValidationError(t *testing.T) {
	err := NewSettingsValidationError("fields", "must be non-empty")

	expectedMsg := "invalid settings for field 'fields': must be non-empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	err2 := NewSettingsValidationError("", "must be non-empty")
	expectedMsg2 := "invalid settings: must be non-empty"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidSettings) {
		t.Error("Expected error to match ErrInvalidSettings sentinel")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := NewFieldCollectionNotFoundError("packages")
	wrappedErr := errors.Join(originalErr, errors.New("additional context"))

	if !errors.Is(wrappedErr, ErrFieldCollectionNotFound) {
		t.Error("Expected wrapped error to still match ErrFieldCollectionNotFound sentinel")
	}

	var notFoundErr *FieldCollectionNotFoundError
	if !errors.As(wrappedErr, &notFoundErr) {
		t.Error("Expected to be able to unwrap to FieldCollectionNotFoundError")
	}
	if notFoundErr.Name != "packages" {
		t.Errorf("Expected name 'packages', got '%s'", notFoundErr.Name)
	}
}
