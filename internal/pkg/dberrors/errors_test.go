package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_id_fkey"}
	wrapped := fmt.Errorf("insert student: %w", unique)

	assert.True(t, IsDuplicateConstraintError(wrapped, "students_email_key"))
	assert.False(t, IsDuplicateConstraintError(wrapped, "courses_course_code_key"))
	assert.False(t, IsDuplicateConstraintError(fk, "enrollments_student_id_fkey"))

	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert enrollment: %w", fk)))
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))
}
