package models

// Department is a standalone record; nothing references it.
type Department struct {
	ID               int64   `json:"id" db:"id"`
	DepartmentName   string  `json:"departmentName" db:"department_name"`
	DepartmentCode   *string `json:"departmentCode,omitempty" db:"department_code"`
	Location         *string `json:"location,omitempty" db:"location"`
	HeadOfDepartment *string `json:"headOfDepartment,omitempty" db:"head_of_department"`
}
