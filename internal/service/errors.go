package service

import "fmt"

// ValidationError reports a bad input field. It is raised before any
// persistence or storage call, so a failed validation never leaves partial
// state behind.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
