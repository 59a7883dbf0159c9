package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/studentrecords/internal/app/models"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/db"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func str(s string) *string { return &s }

// Courses are the default catalogue.
func Courses() []*appModels.Course {
	return []*appModels.Course{
		{CourseName: "Computer Science", CourseCode: "CS101", Credits: 3},
		{CourseName: "Mathematics", CourseCode: "MATH101", Credits: 4},
		{CourseName: "Physics", CourseCode: "PHY101", Credits: 3},
	}
}

func Departments() []*appModels.Department {
	return []*appModels.Department{
		{DepartmentName: "Computer Science", DepartmentCode: str("CS"), Location: str("Building A"), HeadOfDepartment: str("Dr. Smith")},
		{DepartmentName: "Mathematics", DepartmentCode: str("MATH"), Location: str("Building B"), HeadOfDepartment: str("Dr. Johnson")},
		{DepartmentName: "Physics", DepartmentCode: str("PHY"), Location: str("Building C"), HeadOfDepartment: str("Dr. Williams")},
		{DepartmentName: "Engineering", DepartmentCode: str("ENG"), Location: str("Building D"), HeadOfDepartment: str("Dr. Brown")},
	}
}

func Students() []*appModels.Student {
	return []*appModels.Student{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@university.com", DateOfBirth: date(2000, 5, 15),
			EnrollmentDate: date(2024, 9, 1), PhoneNumber: str("555-0101"), Address: str("123 Main St, City, State")},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@university.com", DateOfBirth: date(2001, 3, 22),
			EnrollmentDate: date(2024, 9, 1), PhoneNumber: str("555-0102"), Address: str("456 Oak Ave, City, State")},
		{FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@university.com", DateOfBirth: date(1999, 11, 8),
			EnrollmentDate: date(2023, 9, 1), PhoneNumber: str("555-0103"), Address: str("789 Pine Rd, City, State")},
		{FirstName: "Emily", LastName: "Davis", Email: "emily.davis@university.com", DateOfBirth: date(2002, 7, 30),
			EnrollmentDate: date(2024, 9, 1), PhoneNumber: str("555-0104"), Address: str("321 Elm St, City, State")},
	}
}

// Enrollments references Students and Courses by their position in those slices.
func Enrollments() []*appModels.Enrollment {
	active, completed := appModels.EnrollmentActive, appModels.EnrollmentCompleted
	return []*appModels.Enrollment{
		{StudentID: 0, CourseID: 0, EnrollmentDate: date(2024, 9, 1), Grade: str("A"), Status: active},
		{StudentID: 0, CourseID: 1, EnrollmentDate: date(2024, 9, 1), Grade: str("B+"), Status: active},
		{StudentID: 1, CourseID: 0, EnrollmentDate: date(2024, 9, 1), Grade: str("A-"), Status: active},
		{StudentID: 1, CourseID: 2, EnrollmentDate: date(2024, 9, 1), Grade: str("B"), Status: active},
		{StudentID: 2, CourseID: 1, EnrollmentDate: date(2023, 9, 1), Grade: str("A"), Status: completed},
		{StudentID: 2, CourseID: 2, EnrollmentDate: date(2024, 1, 15), Status: active},
		{StudentID: 3, CourseID: 0, EnrollmentDate: date(2024, 9, 1), Status: active},
		{StudentID: 3, CourseID: 1, EnrollmentDate: date(2024, 9, 1), Status: active},
	}
}

// CreateDefaultData inserts the default records into empty tables inside a
// single transaction. Tables that already hold rows are left alone.
// Enrollments are only seeded together with the students and courses they reference.
// The first failing step aborts the transaction and is returned.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var studentIDs, courseIDs []int64

		return runSteps(ctx,
			func(ctx context.Context) (err error) {
				studentIDs, err = seedStudents(ctx, tx, lgr)
				return err
			},
			func(ctx context.Context) (err error) {
				courseIDs, err = seedCourses(ctx, tx, lgr)
				return err
			},
			func(ctx context.Context) error {
				return seedDepartments(ctx, tx, lgr)
			},
			func(ctx context.Context) error {
				if studentIDs == nil || courseIDs == nil {
					return nil
				}
				return seedEnrollments(ctx, tx, studentIDs, courseIDs, lgr)
			},
		)
	})
}

// runSteps runs steps in order and returns the first error.
func runSteps(ctx context.Context, steps ...func(context.Context) error) error {
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedStudents(ctx context.Context, tx pgx.Tx, lgr zerolog.Logger) ([]int64, error) {
	empty, err := appRepos.IsEmpty(ctx, tx, appRepos.TableStudents)
	if err != nil || !empty {
		return nil, err
	}

	repo := appRepos.NewStudentRepository(tx)
	var ids []int64
	for _, s := range Students() {
		if err := repo.Create(ctx, s); err != nil {
			lgr.Error().Err(err).Str("email", s.Email).Msg("Error creating default student")
			return nil, fmt.Errorf("seeding student %s: %w", s.Email, err)
		}
		ids = append(ids, s.ID)
	}
	lgr.Info().Int("count", len(ids)).Msg("Default students created")
	return ids, nil
}

func seedCourses(ctx context.Context, tx pgx.Tx, lgr zerolog.Logger) ([]int64, error) {
	empty, err := appRepos.IsEmpty(ctx, tx, appRepos.TableCourses)
	if err != nil || !empty {
		return nil, err
	}

	repo := appRepos.NewCourseRepository(tx)
	var ids []int64
	for _, c := range Courses() {
		if err := repo.Create(ctx, c); err != nil {
			lgr.Error().Err(err).Str("code", c.CourseCode).Msg("Error creating default course")
			return nil, fmt.Errorf("seeding course %s: %w", c.CourseCode, err)
		}
		ids = append(ids, c.ID)
	}
	lgr.Info().Int("count", len(ids)).Msg("Default courses created")
	return ids, nil
}

func seedDepartments(ctx context.Context, tx pgx.Tx, lgr zerolog.Logger) error {
	empty, err := appRepos.IsEmpty(ctx, tx, appRepos.TableDepartments)
	if err != nil || !empty {
		return err
	}

	repo := appRepos.NewDepartmentRepository(tx)
	for _, d := range Departments() {
		if err := repo.Create(ctx, d); err != nil {
			lgr.Error().Err(err).Str("name", d.DepartmentName).Msg("Error creating default department")
			return fmt.Errorf("seeding department %s: %w", d.DepartmentName, err)
		}
	}
	lgr.Info().Msg("Default departments created")
	return nil
}

func seedEnrollments(ctx context.Context, tx pgx.Tx, studentIDs, courseIDs []int64, lgr zerolog.Logger) error {
	empty, err := appRepos.IsEmpty(ctx, tx, appRepos.TableEnrollments)
	if err != nil || !empty {
		return err
	}

	repo := appRepos.NewEnrollmentRepository(tx)
	for _, e := range Enrollments() {
		e.StudentID = studentIDs[e.StudentID]
		e.CourseID = courseIDs[e.CourseID]
		if err := repo.Create(ctx, e); err != nil {
			lgr.Error().Err(err).Int64("studentId", e.StudentID).Int64("courseId", e.CourseID).Msg("Error creating default enrollment")
			return fmt.Errorf("seeding enrollment: %w", err)
		}
	}
	lgr.Info().Msg("Default enrollments created")
	return nil
}
