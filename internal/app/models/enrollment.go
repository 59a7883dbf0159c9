package models

import "time"

// Enrollment links one student to one course.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"studentId" db:"student_id"`
	CourseID       int64            `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Grade          *string          `json:"grade,omitempty" db:"grade"`
	Status         EnrollmentStatus `json:"status" db:"status"`

	// Relations (populated when needed)
	Student *StudentSummary `json:"student,omitempty"`
	Course  *CourseSummary  `json:"course,omitempty"`
}

// StudentSummary is the part of a student embedded in enrollment responses.
type StudentSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CourseSummary is the part of a course embedded in enrollment responses.
type CourseSummary struct {
	ID         int64  `json:"id"`
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
}
