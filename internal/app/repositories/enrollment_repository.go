package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db DBTX
}

func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// selectEnrollmentDetails joins the student and course summaries.
func selectEnrollmentDetails() squirrel.SelectBuilder {
	return psql.Select(
		"e.id", "e.student_id", "e.course_id", "e.enrollment_date", "e.grade", "e.status",
		"s.first_name", "s.last_name", "s.email",
		"c.course_name", "c.course_code",
	).From("enrollments e").
		Join("students s ON e.student_id = s.id").
		Join("courses c ON e.course_id = c.id")
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var (
		e models.Enrollment
		s models.StudentSummary
		c models.CourseSummary
	)
	err := row.Scan(
		&e.ID, &e.StudentID, &e.CourseID, &e.EnrollmentDate, &e.Grade, &e.Status,
		&s.FirstName, &s.LastName, &s.Email,
		&c.CourseName, &c.CourseCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, err
	}
	s.ID, c.ID = e.StudentID, e.CourseID
	e.Student, e.Course = &s, &c
	return &e, nil
}

// applyEnrollmentFilter adds the optional filters to a query over "enrollments e".
func applyEnrollmentFilter(q squirrel.SelectBuilder, f dto.EnrollmentFilter) squirrel.SelectBuilder {
	if f.StudentID != nil {
		q = q.Where(squirrel.Eq{"e.student_id": *f.StudentID})
	}
	if f.CourseID != nil {
		q = q.Where(squirrel.Eq{"e.course_id": *f.CourseID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"e.status": string(*f.Status)})
	}
	return q
}

// Create inserts the enrollment. A missing student or course is reported as
// ErrEnrollmentReference.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := psql.Insert("enrollments").
		Columns("student_id", "course_id", "enrollment_date", "grade", "status").
		Values(e.StudentID, e.CourseID, e.EnrollmentDate, e.Grade, string(e.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEnrollmentReference
		}
		logger.Error().Err(err).Int64("studentID", e.StudentID).Int64("courseID", e.CourseID).Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment with its student and course summaries.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := selectEnrollmentDetails().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil && !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error retrieving enrollment")
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return e, err
}

// List returns one page of enrollments matching the filter, newest first.
func (r *EnrollmentRepository) List(ctx context.Context, f dto.EnrollmentFilter) ([]*models.Enrollment, dto.PaginationInfo, error) {
	total, err := count(ctx, r.db, applyEnrollmentFilter(psql.Select("COUNT(*)").From("enrollments e"), f))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting enrollments: %w", err)
	}
	pagination := helpers.NewPaginationInfo(total, f.Page, f.Size)
	if total == 0 {
		return []*models.Enrollment{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(f.Page, f.Size)
	sql, args, err := applyEnrollmentFilter(selectEnrollmentDetails(), f).
		OrderBy("e.enrollment_date DESC", "e.id").
		Limit(limit).Offset(offset).
		ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0, limit)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("database iteration error: %w", err)
	}
	return enrollments, pagination, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := psql.Update("enrollments").
		Set("student_id", e.StudentID).
		Set("course_id", e.CourseID).
		Set("enrollment_date", e.EnrollmentDate).
		Set("grade", e.Grade).
		Set("status", string(e.Status)).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEnrollmentReference
		}
		logger.Error().Err(err).Int64("enrollmentID", e.ID).Msg("Error executing update enrollment query")
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
