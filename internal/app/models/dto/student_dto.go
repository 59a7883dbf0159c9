package dto

import (
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
)

// StudentRequest is the body of POST and PUT /students.
type StudentRequest struct {
	FirstName      string  `json:"firstName" binding:"required,max=100"`
	LastName       string  `json:"lastName" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email,max=200"`
	DateOfBirth    string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02" example:"2000-01-15"`
	EnrollmentDate string  `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02" example:"2024-09-01"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" binding:"omitempty,max=30"`
	Address        *string `json:"address,omitempty" binding:"omitempty,max=300"`
}

// ToModel converts the request. A missing enrollment date means today.
func (r StudentRequest) ToModel() (*models.Student, error) {
	dob, err := time.Parse(DateLayout, r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	enrolled := time.Now().UTC().Truncate(24 * time.Hour)
	if r.EnrollmentDate != "" {
		if enrolled, err = time.Parse(DateLayout, r.EnrollmentDate); err != nil {
			return nil, err
		}
	}
	return &models.Student{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		DateOfBirth:    dob,
		EnrollmentDate: enrolled,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
	}, nil
}

// StudentListResponse represents a page of students
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
