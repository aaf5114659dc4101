package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
	"github.com/JulieDelts/OnlineLearningPlatform/utils"
)

func testJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("0123456789abcdef0123456789abcdef", time.Minute)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hashed)
}

func TestRegister(t *testing.T) {
	t.Run("duplicate login", func(t *testing.T) {
		existing := &domain.User{UUID: "user-1", Login: "julie"}
		svc := NewUserService(newFakeUserRepo(existing), testJWTManager())

		_, err := svc.Register(context.Background(), &domain.User{Login: "julie", Password: "password123"})
		want := "User with login julie already exists."
		if err == nil || err.Error() != want {
			t.Fatalf("Register() error = %v, want %q", err, want)
		}
		if !domain.IsConflict(err) {
			t.Errorf("Register() error has wrong kind: %v", err)
		}
	})

	t.Run("new users start as active students with a hashed password", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := NewUserService(userRepo, testJWTManager())

		user := domain.User{Login: "julie", Password: "password123"}
		uuid, err := svc.Register(context.Background(), &user)
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if uuid == "" {
			t.Error("Register() returned empty uuid")
		}

		stored := userRepo.users[uuid]
		if stored.Role != domain.RoleStudent {
			t.Errorf("role = %s, want %s", stored.Role, domain.RoleStudent)
		}
		if stored.IsDeactivated {
			t.Error("new user must start active")
		}
		if stored.Password == "password123" {
			t.Error("password stored in plain text")
		}
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")) != nil {
			t.Error("stored hash does not match the password")
		}
	})
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{
		UUID:     "user-1",
		Login:    "julie",
		Password: "", // set per test
		Role:     domain.RoleTeacher,
	}

	t.Run("unknown login", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testJWTManager())
		_, err := svc.Authenticate(context.Background(), "nobody", "password123")
		if !errors.Is(err, domain.ErrWrongCredentials) {
			t.Fatalf("Authenticate() error = %v, want ErrWrongCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user.Password = hashOf(t, "password123")
		svc := NewUserService(newFakeUserRepo(user), testJWTManager())
		_, err := svc.Authenticate(context.Background(), "julie", "wrongwrong")
		if !errors.Is(err, domain.ErrWrongCredentials) {
			t.Fatalf("Authenticate() error = %v, want ErrWrongCredentials", err)
		}
	})

	t.Run("token carries the subject and role", func(t *testing.T) {
		user.Password = hashOf(t, "password123")
		manager := testJWTManager()
		svc := NewUserService(newFakeUserRepo(user), manager)

		token, err := svc.Authenticate(context.Background(), "julie", "password123")
		if err != nil {
			t.Fatalf("Authenticate() error = %v, want nil", err)
		}

		uuid, role, err := manager.VerifyToken(token)
		if err != nil {
			t.Fatalf("VerifyToken() error = %v, want nil", err)
		}
		if uuid != "user-1" || role != domain.RoleTeacher {
			t.Errorf("token claims = (%s, %s), want (user-1, %s)", uuid, role, domain.RoleTeacher)
		}
	})
}

func TestRegisterThenAuthenticate(t *testing.T) {
	userRepo := newFakeUserRepo()
	manager := testJWTManager()
	svc := NewUserService(userRepo, manager)

	uuid, err := svc.Register(context.Background(), &domain.User{Login: "julie", Password: "password123"})
	if err != nil {
		t.Fatalf("Register() error = %v, want nil", err)
	}

	token, err := svc.Authenticate(context.Background(), "julie", "password123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v, want nil", err)
	}

	gotUUID, gotRole, err := manager.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v, want nil", err)
	}
	if gotUUID != uuid || gotRole != domain.RoleStudent {
		t.Errorf("token claims = (%s, %s), want (%s, %s)", gotUUID, gotRole, uuid, domain.RoleStudent)
	}
}

func TestGetTaughtCoursesByUserUUID(t *testing.T) {
	t.Run("student has no taught courses", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(activeStudent()), testJWTManager())
		_, err := svc.GetTaughtCoursesByUserUUID(context.Background(), "student-1")
		want := "The role of the user is not correct."
		if err == nil || err.Error() != want {
			t.Fatalf("GetTaughtCoursesByUserUUID() error = %v, want %q", err, want)
		}
	})

	t.Run("teacher", func(t *testing.T) {
		teacher := activeTeacher()
		teacher.TaughtCourses = []domain.Course{{UUID: "course-1", TeacherUUID: teacher.UUID}}
		svc := NewUserService(newFakeUserRepo(teacher), testJWTManager())

		courses, err := svc.GetTaughtCoursesByUserUUID(context.Background(), teacher.UUID)
		if err != nil {
			t.Fatalf("GetTaughtCoursesByUserUUID() error = %v, want nil", err)
		}
		if len(courses) != 1 {
			t.Errorf("got %d courses, want 1", len(courses))
		}
	})
}

func TestGetEnrollmentsByUserUUID(t *testing.T) {
	t.Run("teacher has no enrollments", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(activeTeacher()), testJWTManager())
		_, err := svc.GetEnrollmentsByUserUUID(context.Background(), "teacher-1")
		want := "The role of the user is not correct."
		if err == nil || err.Error() != want {
			t.Fatalf("GetEnrollmentsByUserUUID() error = %v, want %q", err, want)
		}
	})

	t.Run("student", func(t *testing.T) {
		student := activeStudent()
		student.Enrollments = []domain.Enrollment{{CourseUUID: "course-1", UserUUID: student.UUID}}
		svc := NewUserService(newFakeUserRepo(student), testJWTManager())

		enrollments, err := svc.GetEnrollmentsByUserUUID(context.Background(), student.UUID)
		if err != nil {
			t.Fatalf("GetEnrollmentsByUserUUID() error = %v, want nil", err)
		}
		if len(enrollments) != 1 {
			t.Errorf("got %d enrollments, want 1", len(enrollments))
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("deactivated user", func(t *testing.T) {
		student := activeStudent()
		student.IsDeactivated = true
		svc := NewUserService(newFakeUserRepo(student), testJWTManager())

		err := svc.UpdateProfile(context.Background(), student.UUID, domain.User{FirstName: "Julie"})
		want := "User with id student-1 is deactivated."
		if err == nil || err.Error() != want {
			t.Fatalf("UpdateProfile() error = %v, want %q", err, want)
		}
	})

	t.Run("overwrites the contact fields only", func(t *testing.T) {
		student := activeStudent()
		student.Login = "julie"
		userRepo := newFakeUserRepo(student)
		svc := NewUserService(userRepo, testJWTManager())

		profile := domain.User{FirstName: "Julie", LastName: "D", Email: "julie@example.com", Phone: "+1234567890"}
		if err := svc.UpdateProfile(context.Background(), student.UUID, profile); err != nil {
			t.Fatalf("UpdateProfile() error = %v, want nil", err)
		}

		stored := userRepo.users[student.UUID]
		if stored.FirstName != "Julie" || stored.Email != "julie@example.com" {
			t.Errorf("stored user = %+v", stored)
		}
		if stored.Login != "julie" {
			t.Error("profile update must not touch the login")
		}
	})
}

func TestUpdatePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		student := activeStudent()
		student.Password = hashOf(t, "password123")
		svc := NewUserService(newFakeUserRepo(student), testJWTManager())

		err := svc.UpdatePassword(context.Background(), student.UUID, "wrongwrong", "newpassword")
		if !errors.Is(err, domain.ErrWrongCredentials) {
			t.Fatalf("UpdatePassword() error = %v, want ErrWrongCredentials", err)
		}
	})

	t.Run("rehashes on success", func(t *testing.T) {
		student := activeStudent()
		student.Password = hashOf(t, "password123")
		userRepo := newFakeUserRepo(student)
		svc := NewUserService(userRepo, testJWTManager())

		if err := svc.UpdatePassword(context.Background(), student.UUID, "password123", "newpassword"); err != nil {
			t.Fatalf("UpdatePassword() error = %v, want nil", err)
		}

		stored := userRepo.users[student.UUID]
		if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpassword")) != nil {
			t.Error("stored hash does not match the new password")
		}
	})
}

func TestUpdateRole(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*domain.User)
		wantErr string
	}{
		{
			name:    "deactivated user",
			setup:   func(u *domain.User) { u.IsDeactivated = true },
			wantErr: "User with id student-1 is deactivated.",
		},
		{
			name:    "non-student cannot change role",
			setup:   func(u *domain.User) { u.Role = domain.RoleTeacher },
			wantErr: "User with id student-1 does not satisfy the requirements.",
		},
		{
			name: "enrolled student cannot change role",
			setup: func(u *domain.User) {
				u.Enrollments = []domain.Enrollment{{CourseUUID: "course-1", UserUUID: u.UUID}}
			},
			wantErr: "User with id student-1 does not satisfy the requirements.",
		},
		{
			name: "unenrolled student becomes teacher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := activeStudent()
			if tt.setup != nil {
				tt.setup(student)
			}

			userRepo := newFakeUserRepo(student)
			svc := NewUserService(userRepo, testJWTManager())

			err := svc.UpdateRole(context.Background(), student.UUID, domain.RoleTeacher)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("UpdateRole() error = %v, want nil", err)
				}
				if userRepo.users[student.UUID].Role != domain.RoleTeacher {
					t.Errorf("role = %s, want %s", userRepo.users[student.UUID].Role, domain.RoleTeacher)
				}
				return
			}

			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("UpdateRole() error = %v, want %q", err, tt.wantErr)
			}
			if !domain.IsConflict(err) {
				t.Errorf("UpdateRole() error has wrong kind: %v", err)
			}
		})
	}
}

func TestDeactivateUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testJWTManager())
		err := svc.DeactivateUser(context.Background(), "missing")
		if !domain.IsNotFound(err) {
			t.Fatalf("DeactivateUser() error = %v, want not-found", err)
		}
	})

	t.Run("sets the flag", func(t *testing.T) {
		student := activeStudent()
		userRepo := newFakeUserRepo(student)
		svc := NewUserService(userRepo, testJWTManager())

		if err := svc.DeactivateUser(context.Background(), student.UUID); err != nil {
			t.Fatalf("DeactivateUser() error = %v, want nil", err)
		}
		if !userRepo.users[student.UUID].IsDeactivated {
			t.Error("user should be deactivated")
		}
	})
}

func TestDeleteUser(t *testing.T) {
	student := activeStudent()
	userRepo := newFakeUserRepo(student)
	svc := NewUserService(userRepo, testJWTManager())

	if err := svc.DeleteUser(context.Background(), student.UUID); err != nil {
		t.Fatalf("DeleteUser() error = %v, want nil", err)
	}
	if len(userRepo.deleted) != 1 || userRepo.deleted[0] != student.UUID {
		t.Errorf("deleted = %v, want [%s]", userRepo.deleted, student.UUID)
	}
}
