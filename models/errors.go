package models

import "fmt"

// ValidationError reports a single field that failed validation. Callers
// inspect it with errors.As to distinguish bad input from store failures.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func negativeField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "must not be negative"}
}
