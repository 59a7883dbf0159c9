package models

// Course represents a course students can enroll in.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	CourseName  string  `json:"courseName" db:"course_name"`
	CourseCode  string  `json:"courseCode" db:"course_code"`
	Credits     int     `json:"credits" db:"credits"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}
