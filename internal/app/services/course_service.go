package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
	ListCourseEnrollments(ctx context.Context, id int64, page, size int) ([]*models.Enrollment, dto.PaginationInfo, error)
}

type courseServiceImpl struct {
	courses     CourseStore
	enrollments EnrollmentStore
}

func NewCourseService(courses CourseStore, enrollments EnrollmentStore) CourseService {
	return &courseServiceImpl{courses: courses, enrollments: enrollments}
}

// normalizeCourse trims input and upper-cases the course code.
func normalizeCourse(c *models.Course) error {
	c.CourseName = strings.TrimSpace(c.CourseName)
	c.CourseCode = strings.ToUpper(strings.TrimSpace(c.CourseCode))

	if err := validation.First(
		validation.Required("courseName", c.CourseName).WithMaxLength(validation.CourseNameMaxLength),
		validation.Required("courseCode", c.CourseCode).
			WithMaxLength(validation.CourseCodeMaxLength).
			WithPattern(validation.CourseCodePattern, "contain only letters, digits and dashes"),
	); err != nil {
		return err
	}
	if c.Credits < 0 {
		return apperrors.NewValidationError("credits", "credits cannot be negative")
	}
	return nil
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := normalizeCourse(course); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	return s.courses.List(ctx, page, size)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateID("id", course.ID); err != nil {
		return err
	}
	if err := normalizeCourse(course); err != nil {
		return err
	}
	return s.courses.Update(ctx, course)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}

func (s *courseServiceImpl) ListCourseEnrollments(ctx context.Context, id int64, page, size int) ([]*models.Enrollment, dto.PaginationInfo, error) {
	if _, err := s.GetCourseByID(ctx, id); err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	enrollments, pagination, err := s.enrollments.List(ctx, dto.EnrollmentFilter{CourseID: &id, Page: page, Size: size})
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("listing enrollments of course %d: %w", id, err)
	}
	return enrollments, pagination, nil
}
