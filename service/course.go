package service

import (
	"context"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

type courseService struct {
	courses domain.CourseRepository
	look    lookup
}

func NewCourseService(courseRepo domain.CourseRepository, userRepo domain.UserRepository) domain.CourseUseCase {
	return &courseService{
		courses: courseRepo,
		look:    lookup{users: userRepo, courses: courseRepo},
	}
}

func (s *courseService) CreateCourse(ctx context.Context, course *domain.Course) (string, error) {
	teacher, err := s.look.user(ctx, course.TeacherUUID)
	if err != nil {
		return "", err
	}

	if teacher.Role != domain.RoleTeacher {
		return "", domain.NewConflict("The role of the user is not correct.")
	}

	if teacher.IsDeactivated {
		return "", domain.NewConflict("User with id %s is deactivated.", teacher.UUID)
	}

	course.IsDeactivated = false
	if err := s.courses.CreateCourse(ctx, course); err != nil {
		return "", err
	}

	return course.UUID, nil
}

func (s *courseService) GetAllActiveCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.GetAllActiveCourses(ctx)
}

func (s *courseService) GetFullCourseByUUID(ctx context.Context, uuid string) (*domain.Course, error) {
	return s.look.courseWithFullInfo(ctx, uuid)
}

func (s *courseService) GetEnrollmentsByCourseUUID(ctx context.Context, uuid string) ([]domain.Enrollment, error) {
	course, err := s.look.courseWithFullInfo(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return course.Enrollments, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, uuid string, fields domain.Course, requesterUUID string) error {
	course, err := s.look.course(ctx, uuid)
	if err != nil {
		return err
	}

	if course.TeacherUUID != requesterUUID {
		return domain.ErrForbidden
	}

	if course.IsDeactivated {
		return domain.NewConflict("Course with id %s is deactivated.", course.UUID)
	}

	course.Name = fields.Name
	course.Description = fields.Description
	course.NumberOfLessons = fields.NumberOfLessons

	return s.courses.UpdateCourse(ctx, course)
}

// DeactivateCourse is idempotent: repeated calls succeed and leave the
// course deactivated.
func (s *courseService) DeactivateCourse(ctx context.Context, uuid, requesterUUID string) error {
	course, err := s.look.course(ctx, uuid)
	if err != nil {
		return err
	}

	if course.TeacherUUID != requesterUUID {
		return domain.ErrForbidden
	}

	course.IsDeactivated = true

	return s.courses.UpdateCourse(ctx, course)
}

// DeleteCourse issues a hard delete. Restricting it to admins is the
// delivery layer's job.
func (s *courseService) DeleteCourse(ctx context.Context, uuid string) error {
	course, err := s.look.course(ctx, uuid)
	if err != nil {
		return err
	}

	return s.courses.DeleteCourse(ctx, course.UUID)
}
