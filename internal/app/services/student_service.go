package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	ListStudentEnrollments(ctx context.Context, id int64, page, size int) ([]*models.Enrollment, dto.PaginationInfo, error)
}

type studentServiceImpl struct {
	students    StudentStore
	enrollments EnrollmentStore
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, enrollments EnrollmentStore) StudentService {
	return &studentServiceImpl{students: students, enrollments: enrollments}
}

func normalizeStudent(s *models.Student) error {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))

	if err := validation.First(
		validation.Required("firstName", s.FirstName).WithMaxLength(validation.PersonNameMaxLength),
		validation.Required("lastName", s.LastName).WithMaxLength(validation.PersonNameMaxLength),
		validation.Required("email", s.Email).WithMaxLength(validation.EmailMaxLength),
		validation.Optional("phoneNumber", s.PhoneNumber).WithMaxLength(validation.PhoneMaxLength),
		validation.Optional("address", s.Address).WithMaxLength(validation.AddressMaxLength),
	); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return apperrors.NewValidationError("email", "email address is invalid")
	}
	if s.DateOfBirth.After(time.Now()) {
		return apperrors.NewValidationError("dateOfBirth", "date of birth cannot be in the future")
	}
	return nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := normalizeStudent(student); err != nil {
		return err
	}
	if err := s.students.Create(ctx, student); err != nil {
		return err
	}
	logger.Info().Int64("studentID", student.ID).Msg("Student created")
	return nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return s.students.GetByID(ctx, id)
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	return s.students.List(ctx, page, size)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateID("id", student.ID); err != nil {
		return err
	}
	if err := normalizeStudent(student); err != nil {
		return err
	}
	return s.students.Update(ctx, student)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("studentID", id).Msg("Student deleted with its enrollments")
	return nil
}

// ListStudentEnrollments returns ErrStudentNotFound for an unknown student
// rather than an empty page.
func (s *studentServiceImpl) ListStudentEnrollments(ctx context.Context, id int64, page, size int) ([]*models.Enrollment, dto.PaginationInfo, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	enrollments, pagination, err := s.enrollments.List(ctx, dto.EnrollmentFilter{StudentID: &id, Page: page, Size: size})
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("listing enrollments of student %d: %w", id, err)
	}
	return enrollments, pagination, nil
}
