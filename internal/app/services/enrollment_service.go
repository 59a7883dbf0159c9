package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, dto.PaginationInfo, error)
	UpdateEnrollment(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	enrollments EnrollmentStore
}

func NewEnrollmentService(enrollments EnrollmentStore) EnrollmentService {
	return &enrollmentServiceImpl{enrollments: enrollments}
}

// validateEnrollment accepts only known statuses on write; an empty status becomes Active.
func validateEnrollment(e *models.Enrollment) error {
	if err := validateID("studentId", e.StudentID); err != nil {
		return err
	}
	if err := validateID("courseId", e.CourseID); err != nil {
		return err
	}

	if e.Status == "" {
		e.Status = models.EnrollmentActive
	}
	status, ok := models.ParseEnrollmentStatus(string(e.Status))
	if !ok {
		return apperrors.NewValidationError("status", fmt.Sprintf("status %q is not one of Active, Completed, Dropped", e.Status))
	}
	e.Status = status

	if e.Grade != nil {
		grade := strings.ToUpper(strings.TrimSpace(*e.Grade))
		switch {
		case grade == "":
			e.Grade = nil
		case utf8.RuneCountInString(grade) > models.MaxGradeLength:
			return apperrors.NewValidationError("grade", "grade must be at most 2 characters")
		default:
			e.Grade = &grade
		}
	}
	return nil
}

// CreateEnrollment stores e and returns it reloaded with its student and course summaries.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	if err := validateEnrollment(e); err != nil {
		return nil, err
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.enrollments.GetByID(ctx, e.ID)
}

func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	noteUnknownStatus(ctx, e)
	return e, nil
}

func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, dto.PaginationInfo, error) {
	items, page, err := s.enrollments.List(ctx, filter)
	if err != nil {
		return nil, page, err
	}
	for _, e := range items {
		noteUnknownStatus(ctx, e)
	}
	return items, page, nil
}

// noteUnknownStatus logs stored statuses outside the write set; they are returned unchanged.
func noteUnknownStatus(ctx context.Context, e *models.Enrollment) {
	if !e.Status.IsKnown() {
		logger.Ctx(ctx).Debug().Int64("enrollment_id", e.ID).Str("status", string(e.Status)).
			Msg("Enrollment has an unrecognised status")
	}
}

func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	if err := validateID("id", e.ID); err != nil {
		return nil, err
	}
	if err := validateEnrollment(e); err != nil {
		return nil, err
	}
	if err := s.enrollments.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.enrollments.GetByID(ctx, e.ID)
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	return s.enrollments.Delete(ctx, id)
}
