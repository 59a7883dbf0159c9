package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/studentrecords/internal/app/models"
)

func TestDefaultDataIsConsistent(t *testing.T) {
	students, courses := Students(), Courses()

	assert.Len(t, students, 4)
	assert.Len(t, courses, 3)
	assert.Len(t, Departments(), 4)

	enrollments := Enrollments()
	assert.Len(t, enrollments, 8)
	for _, e := range enrollments {
		assert.Less(t, int(e.StudentID), len(students))
		assert.Less(t, int(e.CourseID), len(courses))
		assert.True(t, e.Status.IsKnown())
		if e.Grade != nil {
			assert.LessOrEqual(t, len(*e.Grade), models.MaxGradeLength)
		}
	}
}

func TestDefaultDataUniqueKeys(t *testing.T) {
	emails := map[string]bool{}
	for _, s := range Students() {
		assert.False(t, emails[s.Email], s.Email)
		emails[s.Email] = true
	}

	codes := map[string]bool{}
	for _, c := range Courses() {
		assert.False(t, codes[c.CourseCode], c.CourseCode)
		codes[c.CourseCode] = true
	}
}

func TestRunSteps_StopsAtFirstError(t *testing.T) {
	errCourses := errors.New("seeding course CS101: duplicate key")
	var ran []string
	step := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			ran = append(ran, name)
			return err
		}
	}

	err := runSteps(context.Background(),
		step("students", nil),
		step("courses", errCourses),
		step("departments", nil),
		step("enrollments", nil),
	)

	assert.ErrorIs(t, err, errCourses)
	assert.Equal(t, []string{"students", "courses"}, ran)
}

func TestRunSteps_AllSucceed(t *testing.T) {
	calls := 0
	inc := func(context.Context) error { calls++; return nil }

	assert.NoError(t, runSteps(context.Background(), inc, inc, inc))
	assert.Equal(t, 3, calls)
}
