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

const studentEmailConstraint = "students_email_key"

var studentColumns = []string{
	"id", "first_name", "last_name", "email", "date_of_birth", "enrollment_date", "phone_number", "address",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.DateOfBirth, &s.EnrollmentDate, &s.PhoneNumber, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts the student and sets its ID.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Insert("students").
		Columns("first_name", "last_name", "email", "date_of_birth", "enrollment_date", "phone_number", "address").
		Values(s.FirstName, s.LastName, s.Email, s.DateOfBirth, s.EnrollmentDate, s.PhoneNumber, s.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			logger.Warn().Str("email", s.Email).Msg("Attempted to create student with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", s.Email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error retrieving student")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, err
}

// List returns one page of students ordered by ID.
func (r *StudentRepository) List(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	total, err := count(ctx, r.db, psql.Select("COUNT(*)").From("students"))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting students: %w", err)
	}
	pagination := helpers.NewPaginationInfo(total, page, size)
	if total == 0 {
		return []*models.Student{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := psql.Select(studentColumns...).From("students").
		OrderBy("id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0, limit)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("database iteration error: %w", err)
	}
	return students, pagination, nil
}

// Update overwrites every mutable column of the student.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Update("students").
		Set("first_name", s.FirstName).
		Set("last_name", s.LastName).
		Set("email", s.Email).
		Set("date_of_birth", s.DateOfBirth).
		Set("enrollment_date", s.EnrollmentDate).
		Set("phone_number", s.PhoneNumber).
		Set("address", s.Address).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("studentID", s.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes the student; its enrollments go with it.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

func count(ctx context.Context, db DBTX, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
