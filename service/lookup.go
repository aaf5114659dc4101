package service

import (
	"context"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

// lookup wraps the store gateways and translates absence into typed
// not-found failures. A not-found is terminal for the calling operation;
// there are no retries.
type lookup struct {
	users       domain.UserRepository
	courses     domain.CourseRepository
	enrollments domain.EnrollmentRepository
}

func (l lookup) user(ctx context.Context, uuid string) (*domain.User, error) {
	user, err := l.users.GetUserByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound(domain.EntityUser, uuid)
	}
	return user, nil
}

func (l lookup) userWithFullInfo(ctx context.Context, uuid string) (*domain.User, error) {
	user, err := l.users.GetUserByUUIDWithFullInfo(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound(domain.EntityUser, uuid)
	}
	return user, nil
}

func (l lookup) course(ctx context.Context, uuid string) (*domain.Course, error) {
	course, err := l.courses.GetCourseByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewNotFound(domain.EntityCourse, uuid)
	}
	return course, nil
}

func (l lookup) courseWithFullInfo(ctx context.Context, uuid string) (*domain.Course, error) {
	course, err := l.courses.GetCourseByUUIDWithFullInfo(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewNotFound(domain.EntityCourse, uuid)
	}
	return course, nil
}

func (l lookup) enrollment(ctx context.Context, courseUUID, userUUID string) (*domain.Enrollment, error) {
	enrollment, err := l.enrollments.GetEnrollment(ctx, courseUUID, userUUID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, domain.NewEnrollmentNotFound(courseUUID, userUUID)
	}
	return enrollment, nil
}
