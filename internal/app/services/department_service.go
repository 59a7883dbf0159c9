package services

import (
	"context"
	"strings"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

func normalizeDepartment(d *models.Department) error {
	d.DepartmentName = strings.TrimSpace(d.DepartmentName)
	if err := validation.Required("departmentName", d.DepartmentName).
		WithMaxLength(validation.DepartmentNameMaxLength).Validate(); err != nil {
		return err
	}
	if d.DepartmentCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*d.DepartmentCode))
		if code == "" {
			d.DepartmentCode = nil
		} else {
			d.DepartmentCode = &code
		}
		if err := validation.Optional("departmentCode", d.DepartmentCode).
			WithMaxLength(validation.DepartmentCodeMaxLength).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, d *models.Department) error {
	if err := normalizeDepartment(d); err != nil {
		return err
	}
	return s.departments.Create(ctx, d)
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return s.departments.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// UpdateDepartment updates an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, d *models.Department) error {
	if err := validateID("id", d.ID); err != nil {
		return err
	}
	if err := normalizeDepartment(d); err != nil {
		return err
	}
	return s.departments.Update(ctx, d)
}

// DeleteDepartment deletes a department by ID
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	return s.departments.Delete(ctx, id)
}
