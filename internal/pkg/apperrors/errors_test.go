package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapSentinels(t *testing.T) {
	tests := []struct {
		err    error
		target error
	}{
		{ErrStudentNotFound, ErrResourceNotFound},
		{ErrCourseNotFound, ErrResourceNotFound},
		{ErrDepartmentNotFound, ErrResourceNotFound},
		{ErrEnrollmentNotFound, ErrResourceNotFound},
		{ErrEmailAlreadyExists, ErrConflict},
		{ErrCourseCodeExists, ErrConflict},
		{ErrEnrollmentReference, ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, fmt.Errorf("service: %w", tt.err), tt.target)
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("grade", "grade must be at most 2 characters")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "grade must be at most 2 characters", err.Error())

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, "grade", custom.Details["field"])
}

func TestCustomErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "conflict", (&CustomError{Err: ErrConflict}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
