package service

import (
	"context"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

type enrollmentService struct {
	enrollments domain.EnrollmentRepository
	look        lookup
}

func NewEnrollmentService(
	enrollmentRepo domain.EnrollmentRepository,
	courseRepo domain.CourseRepository,
	userRepo domain.UserRepository,
) domain.EnrollmentUseCase {
	return &enrollmentService{
		enrollments: enrollmentRepo,
		look: lookup{
			users:       userRepo,
			courses:     courseRepo,
			enrollments: enrollmentRepo,
		},
	}
}

// Enroll runs its checks in a fixed priority order: course missing, course
// deactivated, user missing, user deactivated, wrong role, duplicate pair.
func (s *enrollmentService) Enroll(ctx context.Context, courseUUID, userUUID string) error {
	course, err := s.look.course(ctx, courseUUID)
	if err != nil {
		return err
	}

	if course.IsDeactivated {
		return domain.NewConflict("Course with id %s is deactivated.", course.UUID)
	}

	user, err := s.look.user(ctx, userUUID)
	if err != nil {
		return err
	}

	if user.IsDeactivated {
		return domain.NewConflict("User with id %s is deactivated.", user.UUID)
	}

	if user.Role != domain.RoleStudent {
		return domain.NewConflict("The role of the user is not correct.")
	}

	existing, err := s.enrollments.GetEnrollment(ctx, courseUUID, userUUID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewConflict("Enrollment with user id %s and course id %s already exists.", userUUID, courseUUID)
	}

	newEnrollment := &domain.Enrollment{
		CourseUUID: courseUUID,
		UserUUID:   userUUID,
	}

	return s.enrollments.CreateEnrollment(ctx, newEnrollment)
}

func (s *enrollmentService) ControlAttendance(ctx context.Context, courseUUID, userUUID string, attendance int, requesterUUID string) error {
	enrollment, err := s.guardedEnrollment(ctx, courseUUID, userUUID, requesterUUID)
	if err != nil {
		return err
	}

	if attendance < 0 || attendance > enrollment.Course.NumberOfLessons {
		return domain.NewConflict("The attendance is out of the acceptable range.")
	}

	return s.enrollments.UpdateAttendance(ctx, enrollment, attendance)
}

func (s *enrollmentService) GradeStudent(ctx context.Context, courseUUID, userUUID string, grade int, requesterUUID string) error {
	enrollment, err := s.guardedEnrollment(ctx, courseUUID, userUUID, requesterUUID)
	if err != nil {
		return err
	}

	// The binding layer enforces this bound too; kept here so the rule
	// engine stays safe against other callers.
	if grade < domain.GradeMin || grade > domain.GradeMax {
		return domain.NewConflict("The grade is out of the acceptable range.")
	}

	return s.enrollments.UpdateGrade(ctx, enrollment, grade)
}

// ReviewCourse has no ownership check of its own: the delivery layer only
// lets the enrolled student reach it.
func (s *enrollmentService) ReviewCourse(ctx context.Context, courseUUID, userUUID, review string) error {
	enrollment, err := s.look.enrollment(ctx, courseUUID, userUUID)
	if err != nil {
		return err
	}

	if enrollment.Course.IsDeactivated {
		return domain.NewConflict("Course with id %s is deactivated.", enrollment.Course.UUID)
	}

	if enrollment.User.IsDeactivated {
		return domain.NewConflict("User with id %s is deactivated.", enrollment.User.UUID)
	}

	return s.enrollments.UpdateReview(ctx, enrollment, review)
}

// Disenroll deletes the enrollment unconditionally: a student may always
// leave, deactivated course or not.
func (s *enrollmentService) Disenroll(ctx context.Context, courseUUID, userUUID string) error {
	enrollment, err := s.look.enrollment(ctx, courseUUID, userUUID)
	if err != nil {
		return err
	}

	return s.enrollments.DeleteEnrollment(ctx, enrollment)
}

// guardedEnrollment resolves the enrollment and applies the checks shared
// by the teacher-side mutations: the requester must own the course and
// neither side of the enrollment may be deactivated.
func (s *enrollmentService) guardedEnrollment(ctx context.Context, courseUUID, userUUID, requesterUUID string) (*domain.Enrollment, error) {
	enrollment, err := s.look.enrollment(ctx, courseUUID, userUUID)
	if err != nil {
		return nil, err
	}

	if enrollment.Course.TeacherUUID != requesterUUID {
		return nil, domain.ErrForbidden
	}

	if enrollment.Course.IsDeactivated {
		return nil, domain.NewConflict("Course with id %s is deactivated.", enrollment.Course.UUID)
	}

	if enrollment.User.IsDeactivated {
		return nil, domain.NewConflict("User with id %s is deactivated.", enrollment.User.UUID)
	}

	return enrollment, nil
}
