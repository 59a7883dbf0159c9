package services

import (
	"context"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

type fakeStudentStore struct {
	byID   map[int64]*models.Student
	nextID int64
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{byID: map[int64]*models.Student{}}
	for _, s := range students {
		f.nextID++
		s.ID = f.nextID
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	for _, existing := range f.byID {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	s.ID = f.nextID
	f.byID[s.ID] = s
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) List(_ context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	out := make([]*models.Student, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, helpers.NewPaginationInfo(int64(len(out)), page, size), nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *models.Student) error {
	if _, ok := f.byID[s.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeEnrollmentStore struct {
	byID       map[int64]*models.Enrollment
	nextID     int64
	lastFilter dto.EnrollmentFilter
	createErr  error
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{byID: map[int64]*models.Enrollment{}}
}

func (f *fakeEnrollmentStore) Create(_ context.Context, e *models.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = f.nextID
	stored := *e
	f.byID[e.ID] = &stored
	return nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	withSummaries := *e
	withSummaries.Student = &models.StudentSummary{ID: e.StudentID}
	withSummaries.Course = &models.CourseSummary{ID: e.CourseID}
	return &withSummaries, nil
}

func (f *fakeEnrollmentStore) List(_ context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, dto.PaginationInfo, error) {
	f.lastFilter = filter
	out := make([]*models.Enrollment, 0)
	for _, e := range f.byID {
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		if filter.CourseID != nil && e.CourseID != *filter.CourseID {
			continue
		}
		out = append(out, e)
	}
	return out, helpers.NewPaginationInfo(int64(len(out)), filter.Page, filter.Size), nil
}

func (f *fakeEnrollmentStore) Update(_ context.Context, e *models.Enrollment) error {
	if _, ok := f.byID[e.ID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	stored := *e
	f.byID[e.ID] = &stored
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeProbe struct {
	pingErr    error
	versionErr error
	countsErr  error
	counts     repositories.EntityCounts
}

func (f *fakeProbe) Ping(context.Context) error { return f.pingErr }

func (f *fakeProbe) ServerVersion(context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return "16.4", nil
}

func (f *fakeProbe) Counts(context.Context) (repositories.EntityCounts, error) {
	return f.counts, f.countsErr
}

type fakeInspector struct {
	info  *models.ClusterInfo
	calls int
}

func (f *fakeInspector) Inspect(context.Context) *models.ClusterInfo {
	f.calls++
	return f.info
}
