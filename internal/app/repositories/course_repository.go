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

const courseCodeConstraint = "courses_course_code_key"

var courseColumns = []string{"id", "course_name", "course_code", "credits", "description"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	if err := row.Scan(&c.ID, &c.CourseName, &c.CourseCode, &c.Credits, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	sql, args, err := psql.Insert("courses").
		Columns("course_name", "course_code", "credits", "description").
		Values(c.CourseName, c.CourseCode, c.Credits, c.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseCodeConstraint) {
			logger.Warn().Str("courseCode", c.CourseCode).Msg("Attempted to create course with duplicate code")
			return apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Str("courseCode", c.CourseCode).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).From("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil && !errors.Is(err, apperrors.ErrCourseNotFound) {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error retrieving course")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, err
}

func (r *CourseRepository) List(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	total, err := count(ctx, r.db, psql.Select("COUNT(*)").From("courses"))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting courses: %w", err)
	}
	pagination := helpers.NewPaginationInfo(total, page, size)
	if total == 0 {
		return []*models.Course{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := psql.Select(courseColumns...).From("courses").
		OrderBy("course_code").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0, limit)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("database iteration error: %w", err)
	}
	return courses, pagination, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	sql, args, err := psql.Update("courses").
		Set("course_name", c.CourseName).
		Set("course_code", c.CourseCode).
		Set("credits", c.Credits).
		Set("description", c.Description).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseCodeConstraint) {
			return apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Int64("courseID", c.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes the course; its enrollments go with it.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
