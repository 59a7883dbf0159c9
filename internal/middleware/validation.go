package middleware

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/studentrecords/internal/app/models"
)

// RegisterValidators installs the custom binding tags on gin's validator and
// reports fields by their JSON names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("enrollmentstatus", validateEnrollmentStatus); err != nil {
		return err
	}
	return v.RegisterValidation("grade", validateGrade)
}

func validateEnrollmentStatus(fl validator.FieldLevel) bool {
	_, ok := models.ParseEnrollmentStatus(fl.Field().String())
	return ok
}

func validateGrade(fl validator.FieldLevel) bool {
	grade := strings.TrimSpace(fl.Field().String())
	return utf8.RuneCountInString(grade) <= models.MaxGradeLength
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "datetime":
		return e.Field() + " must be a date formatted as YYYY-MM-DD"
	case "enrollmentstatus":
		return e.Field() + " must be one of: Active, Completed, Dropped"
	case "grade":
		return e.Field() + " must be at most 2 characters"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
