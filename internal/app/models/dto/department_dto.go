package dto

import "github.com/yigit/studentrecords/internal/app/models"

// DepartmentRequest represents department creation and update data
type DepartmentRequest struct {
	DepartmentName   string  `json:"departmentName" binding:"required,max=100"`
	DepartmentCode   *string `json:"departmentCode,omitempty" binding:"omitempty,max=20"`
	Location         *string `json:"location,omitempty"`
	HeadOfDepartment *string `json:"headOfDepartment,omitempty"`
}

func (r DepartmentRequest) ToModel() *models.Department {
	return &models.Department{
		DepartmentName:   r.DepartmentName,
		DepartmentCode:   r.DepartmentCode,
		Location:         r.Location,
		HeadOfDepartment: r.HeadOfDepartment,
	}
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []*models.Department `json:"departments"`
}
