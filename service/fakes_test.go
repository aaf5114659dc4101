package service

import (
	"context"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

// In-memory repository fakes. Lookups mirror the store gateways and
// return (nil, nil) for absent rows.

type fakeUserRepo struct {
	users   map[string]*domain.User
	updated []*domain.User
	deleted []string
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		repo.users[user.UUID] = user
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	if user.UUID == "" {
		user.UUID = "generated-user-uuid"
	}
	f.users[user.UUID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUUID(_ context.Context, uuid string) (*domain.User, error) {
	return f.users[uuid], nil
}

func (f *fakeUserRepo) GetUserByUUIDWithFullInfo(_ context.Context, uuid string) (*domain.User, error) {
	return f.users[uuid], nil
}

func (f *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Login == login {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllActiveUsers(_ context.Context) ([]domain.User, error) {
	var active []domain.User
	for _, user := range f.users {
		if !user.IsDeactivated {
			active = append(active, *user)
		}
	}
	return active, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *domain.User) error {
	f.users[user.UUID] = user
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, uuid string) error {
	delete(f.users, uuid)
	f.deleted = append(f.deleted, uuid)
	return nil
}

type fakeCourseRepo struct {
	courses map[string]*domain.Course
	updated []*domain.Course
	deleted []string
}

func newFakeCourseRepo(courses ...*domain.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{courses: make(map[string]*domain.Course)}
	for _, course := range courses {
		repo.courses[course.UUID] = course
	}
	return repo
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, course *domain.Course) error {
	if course.UUID == "" {
		course.UUID = "generated-course-uuid"
	}
	f.courses[course.UUID] = course
	return nil
}

func (f *fakeCourseRepo) GetCourseByUUID(_ context.Context, uuid string) (*domain.Course, error) {
	return f.courses[uuid], nil
}

func (f *fakeCourseRepo) GetCourseByUUIDWithFullInfo(_ context.Context, uuid string) (*domain.Course, error) {
	return f.courses[uuid], nil
}

func (f *fakeCourseRepo) GetAllActiveCourses(_ context.Context) ([]domain.Course, error) {
	var active []domain.Course
	for _, course := range f.courses {
		if !course.IsDeactivated {
			active = append(active, *course)
		}
	}
	return active, nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, course *domain.Course) error {
	f.courses[course.UUID] = course
	f.updated = append(f.updated, course)
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, uuid string) error {
	delete(f.courses, uuid)
	f.deleted = append(f.deleted, uuid)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]*domain.Enrollment
	created     []*domain.Enrollment
	attendance  map[string]int
	grades      map[string]int
	reviews     map[string]string
	deleted     []string
}

func enrollmentKey(courseUUID, userUUID string) string {
	return courseUUID + "|" + userUUID
}

func newFakeEnrollmentRepo(enrollments ...*domain.Enrollment) *fakeEnrollmentRepo {
	repo := &fakeEnrollmentRepo{
		enrollments: make(map[string]*domain.Enrollment),
		attendance:  make(map[string]int),
		grades:      make(map[string]int),
		reviews:     make(map[string]string),
	}
	for _, enrollment := range enrollments {
		repo.enrollments[enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)] = enrollment
	}
	return repo
}

func (f *fakeEnrollmentRepo) CreateEnrollment(_ context.Context, enrollment *domain.Enrollment) error {
	f.enrollments[enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)] = enrollment
	f.created = append(f.created, enrollment)
	return nil
}

func (f *fakeEnrollmentRepo) GetEnrollment(_ context.Context, courseUUID, userUUID string) (*domain.Enrollment, error) {
	return f.enrollments[enrollmentKey(courseUUID, userUUID)], nil
}

func (f *fakeEnrollmentRepo) UpdateAttendance(_ context.Context, enrollment *domain.Enrollment, attendance int) error {
	f.attendance[enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)] = attendance
	return nil
}

func (f *fakeEnrollmentRepo) UpdateGrade(_ context.Context, enrollment *domain.Enrollment, grade int) error {
	f.grades[enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)] = grade
	return nil
}

func (f *fakeEnrollmentRepo) UpdateReview(_ context.Context, enrollment *domain.Enrollment, review string) error {
	f.reviews[enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)] = review
	return nil
}

func (f *fakeEnrollmentRepo) DeleteEnrollment(_ context.Context, enrollment *domain.Enrollment) error {
	key := enrollmentKey(enrollment.CourseUUID, enrollment.UserUUID)
	delete(f.enrollments, key)
	f.deleted = append(f.deleted, key)
	return nil
}
