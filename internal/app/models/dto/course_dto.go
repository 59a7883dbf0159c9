package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CourseRequest is the body of POST and PUT /courses.
type CourseRequest struct {
	CourseName  string  `json:"courseName" binding:"required,max=200"`
	CourseCode  string  `json:"courseCode" binding:"required,max=20"`
	Credits     int     `json:"credits" binding:"min=0,max=30"`
	Description *string `json:"description,omitempty"`
}

func (r CourseRequest) ToModel() *models.Course {
	return &models.Course{
		CourseName:  r.CourseName,
		CourseCode:  r.CourseCode,
		Credits:     r.Credits,
		Description: r.Description,
	}
}

// CourseListResponse represents a page of courses
type CourseListResponse struct {
	Courses    []*models.Course `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}
