package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	FirstName      string    `json:"firstName" db:"first_name" example:"John"`
	LastName       string    `json:"lastName" db:"last_name" example:"Doe"`
	Email          string    `json:"email" db:"email" example:"john.doe@university.com"`
	DateOfBirth    time.Time `json:"dateOfBirth" db:"date_of_birth"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty" db:"phone_number"` // Nullable
	Address        *string   `json:"address,omitempty" db:"address"`          // Nullable
}
