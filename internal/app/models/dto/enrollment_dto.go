package dto

import (
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
)

// EnrollmentRequest is the body of POST and PUT /enrollments.
// An empty status means Active.
type EnrollmentRequest struct {
	StudentID      int64   `json:"studentId" binding:"required,gt=0"`
	CourseID       int64   `json:"courseId" binding:"required,gt=0"`
	EnrollmentDate string  `json:"enrollmentDate" binding:"omitempty,datetime=2006-01-02"`
	Grade          *string `json:"grade,omitempty" binding:"omitempty,grade"`
	Status         string  `json:"status" binding:"omitempty,enrollmentstatus" example:"Active"`
}

func (r EnrollmentRequest) ToModel() (*models.Enrollment, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if r.EnrollmentDate != "" {
		var err error
		if date, err = time.Parse(DateLayout, r.EnrollmentDate); err != nil {
			return nil, err
		}
	}

	status := models.EnrollmentActive
	if r.Status != "" {
		status, _ = models.ParseEnrollmentStatus(r.Status)
	}

	return &models.Enrollment{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		EnrollmentDate: date,
		Grade:          r.Grade,
		Status:         status,
	}, nil
}

// EnrollmentFilter narrows GET /enrollments.
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
	Status    *models.EnrollmentStatus
	Page      int
	Size      int
}

// EnrollmentListResponse represents a page of enrollments
type EnrollmentListResponse struct {
	Enrollments []*models.Enrollment `json:"enrollments"`
	Pagination  PaginationInfo       `json:"pagination"`
}
