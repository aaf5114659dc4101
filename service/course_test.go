package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

func TestCreateCourse(t *testing.T) {
	tests := []struct {
		name      string
		setupUser func(*domain.User)
		teacher   string
		wantErr   string
		wantKind  func(error) bool
	}{
		{
			name:     "missing teacher",
			teacher:  "missing",
			wantErr:  "User with id missing was not found.",
			wantKind: domain.IsNotFound,
		},
		{
			name:      "student cannot own a course",
			teacher:   "teacher-1",
			setupUser: func(u *domain.User) { u.Role = domain.RoleStudent },
			wantErr:   "The role of the user is not correct.",
			wantKind:  domain.IsConflict,
		},
		{
			name:      "deactivated teacher",
			teacher:   "teacher-1",
			setupUser: func(u *domain.User) { u.IsDeactivated = true },
			wantErr:   "User with id teacher-1 is deactivated.",
			wantKind:  domain.IsConflict,
		},
		{
			name:    "success",
			teacher: "teacher-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teacher := activeTeacher()
			if tt.setupUser != nil {
				tt.setupUser(teacher)
			}

			courseRepo := newFakeCourseRepo()
			svc := NewCourseService(courseRepo, newFakeUserRepo(teacher))

			course := domain.Course{
				Name:            "Go from scratch",
				NumberOfLessons: 20,
				TeacherUUID:     tt.teacher,
			}
			uuid, err := svc.CreateCourse(context.Background(), &course)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CreateCourse() error = %v, want nil", err)
				}
				if uuid == "" {
					t.Error("CreateCourse() returned empty uuid")
				}
				if course.IsDeactivated {
					t.Error("new course must start active")
				}
				return
			}

			if err == nil {
				t.Fatal("CreateCourse() error = nil, want error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("CreateCourse() error = %q, want %q", err.Error(), tt.wantErr)
			}
			if !tt.wantKind(err) {
				t.Errorf("CreateCourse() error has wrong kind: %v", err)
			}
		})
	}
}

func TestUpdateCourse(t *testing.T) {
	fields := domain.Course{
		Name:            "Go, revised",
		Description:     "Now with generics.",
		NumberOfLessons: 25,
	}

	t.Run("missing course", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseRepo(), newFakeUserRepo())
		err := svc.UpdateCourse(context.Background(), "missing", fields, "teacher-1")
		if !domain.IsNotFound(err) {
			t.Fatalf("UpdateCourse() error = %v, want not-found", err)
		}
	})

	t.Run("only the owner may update", func(t *testing.T) {
		course := activeCourse()
		svc := NewCourseService(newFakeCourseRepo(course), newFakeUserRepo())
		err := svc.UpdateCourse(context.Background(), course.UUID, fields, "teacher-2")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("UpdateCourse() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("deactivated course rejects updates", func(t *testing.T) {
		course := activeCourse()
		course.IsDeactivated = true
		svc := NewCourseService(newFakeCourseRepo(course), newFakeUserRepo())
		err := svc.UpdateCourse(context.Background(), course.UUID, fields, "teacher-1")
		want := "Course with id course-1 is deactivated."
		if err == nil || err.Error() != want {
			t.Fatalf("UpdateCourse() error = %v, want %q", err, want)
		}
	})

	t.Run("owner overwrites the mutable fields", func(t *testing.T) {
		course := activeCourse()
		courseRepo := newFakeCourseRepo(course)
		svc := NewCourseService(courseRepo, newFakeUserRepo())

		if err := svc.UpdateCourse(context.Background(), course.UUID, fields, "teacher-1"); err != nil {
			t.Fatalf("UpdateCourse() error = %v, want nil", err)
		}

		if len(courseRepo.updated) != 1 {
			t.Fatalf("updated %d courses, want 1", len(courseRepo.updated))
		}
		got := courseRepo.updated[0]
		if got.Name != fields.Name || got.Description != fields.Description || got.NumberOfLessons != fields.NumberOfLessons {
			t.Errorf("updated course = %+v", got)
		}
		if got.TeacherUUID != "teacher-1" {
			t.Errorf("update must not reassign the owner, got %s", got.TeacherUUID)
		}
	})
}

func TestDeactivateCourse(t *testing.T) {
	t.Run("only the owner may deactivate", func(t *testing.T) {
		course := activeCourse()
		svc := NewCourseService(newFakeCourseRepo(course), newFakeUserRepo())
		err := svc.DeactivateCourse(context.Background(), course.UUID, "teacher-2")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("DeactivateCourse() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		course := activeCourse()
		courseRepo := newFakeCourseRepo(course)
		svc := NewCourseService(courseRepo, newFakeUserRepo())

		for i := 0; i < 2; i++ {
			if err := svc.DeactivateCourse(context.Background(), course.UUID, "teacher-1"); err != nil {
				t.Fatalf("DeactivateCourse() call %d error = %v, want nil", i+1, err)
			}
		}

		if !courseRepo.courses[course.UUID].IsDeactivated {
			t.Error("course should be deactivated")
		}
	})
}

func TestDeleteCourse(t *testing.T) {
	t.Run("missing course", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseRepo(), newFakeUserRepo())
		err := svc.DeleteCourse(context.Background(), "missing")
		if !domain.IsNotFound(err) {
			t.Fatalf("DeleteCourse() error = %v, want not-found", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		course := activeCourse()
		courseRepo := newFakeCourseRepo(course)
		svc := NewCourseService(courseRepo, newFakeUserRepo())

		if err := svc.DeleteCourse(context.Background(), course.UUID); err != nil {
			t.Fatalf("DeleteCourse() error = %v, want nil", err)
		}
		if len(courseRepo.deleted) != 1 || courseRepo.deleted[0] != course.UUID {
			t.Errorf("deleted = %v, want [%s]", courseRepo.deleted, course.UUID)
		}
	})
}

func TestGetEnrollmentsByCourseUUID(t *testing.T) {
	course := activeCourse()
	course.Enrollments = []domain.Enrollment{
		{CourseUUID: course.UUID, UserUUID: "student-1"},
		{CourseUUID: course.UUID, UserUUID: "student-2"},
	}
	svc := NewCourseService(newFakeCourseRepo(course), newFakeUserRepo())

	enrollments, err := svc.GetEnrollmentsByCourseUUID(context.Background(), course.UUID)
	if err != nil {
		t.Fatalf("GetEnrollmentsByCourseUUID() error = %v, want nil", err)
	}
	if len(enrollments) != 2 {
		t.Errorf("got %d enrollments, want 2", len(enrollments))
	}
}
