package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// Repository contracts consumed by the services; satisfied by the
// implementations in internal/app/repositories.

type StudentStore interface {
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error)
	Update(ctx context.Context, s *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type CourseStore interface {
	Create(ctx context.Context, c *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error)
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type DepartmentStore interface {
	Create(ctx context.Context, d *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type EnrollmentStore interface {
	Create(ctx context.Context, e *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, f dto.EnrollmentFilter) ([]*models.Enrollment, dto.PaginationInfo, error)
	Update(ctx context.Context, e *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be a positive integer", field))
	}
	return nil
}
