package models

import "strings"

// EnrollmentStatus is the lifecycle state of an enrollment.
// Values outside the known set are preserved as read from the database.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentCompleted EnrollmentStatus = "Completed"
	EnrollmentDropped   EnrollmentStatus = "Dropped"
)

// KnownEnrollmentStatuses lists the statuses accepted on write.
var KnownEnrollmentStatuses = []EnrollmentStatus{EnrollmentActive, EnrollmentCompleted, EnrollmentDropped}

// IsKnown reports whether s is one of the statuses accepted on write.
func (s EnrollmentStatus) IsKnown() bool {
	for _, known := range KnownEnrollmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseEnrollmentStatus matches case-insensitively and returns the canonical spelling.
func ParseEnrollmentStatus(raw string) (EnrollmentStatus, bool) {
	for _, known := range KnownEnrollmentStatuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(known)) {
			return known, true
		}
	}
	return EnrollmentStatus(raw), false
}

// MaxGradeLength bounds Enrollment.Grade.
const MaxGradeLength = 2
