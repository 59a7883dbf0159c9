package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound    = NewCustomError(ErrResourceNotFound, "student not found")
	ErrEmailAlreadyExists = NewCustomError(ErrConflict, "a student with this email already exists")
)

// Course errors
var (
	ErrCourseNotFound   = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseCodeExists = NewCustomError(ErrConflict, "a course with this code already exists")
)

// Department errors
var (
	ErrDepartmentNotFound = NewCustomError(ErrResourceNotFound, "department not found")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = NewCustomError(ErrResourceNotFound, "enrollment not found")
	// ErrEnrollmentReference is returned when the referenced student or course does not exist.
	ErrEnrollmentReference = NewCustomError(ErrValidationFailed, "enrollment references a missing student or course")
)

// NewValidationError creates a validation failure carrying the offending field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
