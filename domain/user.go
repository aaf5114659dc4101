package domain

import (
	"context"
	"time"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// IsValidRole reports whether role is one of the closed set of roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	UUID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"uuid"`
	FirstName     string    `gorm:"not null;size:30" json:"first_name"`
	LastName      string    `gorm:"not null;size:30" json:"last_name"`
	Login         string    `gorm:"unique;not null;size:10" json:"login"`
	Password      string    `gorm:"not null" json:"-"`
	Role          string    `gorm:"not null;default:'student'" json:"role"` // student | teacher | admin
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `gorm:"not null;size:15" json:"phone"`
	IsDeactivated bool      `gorm:"not null;default:false" json:"is_deactivated"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	TaughtCourses []Course     `gorm:"foreignKey:TeacherUUID;constraint:OnDelete:CASCADE" json:"taught_courses,omitempty"`
	Enrollments   []Enrollment `gorm:"foreignKey:UserUUID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}

// UserRepository is the store gateway for users. Lookups return (nil, nil)
// when no row matches; translating absence into a typed failure is the
// service layer's job.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUUID(ctx context.Context, uuid string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	// GetUserByUUIDWithFullInfo also loads taught courses and enrollments
	// with their course sides.
	GetUserByUUIDWithFullInfo(ctx context.Context, uuid string) (*User, error)
	GetAllActiveUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, uuid string) error
}

type UserUseCase interface {
	Register(ctx context.Context, user *User) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	GetAllActiveUsers(ctx context.Context) ([]User, error)
	GetUserByUUID(ctx context.Context, uuid string) (*User, error)
	GetTaughtCoursesByUserUUID(ctx context.Context, uuid string) ([]Course, error)
	GetEnrollmentsByUserUUID(ctx context.Context, uuid string) ([]Enrollment, error)
	UpdateProfile(ctx context.Context, uuid string, profile User) error
	UpdatePassword(ctx context.Context, uuid, currentPassword, newPassword string) error
	UpdateRole(ctx context.Context, uuid, newRole string) error
	DeactivateUser(ctx context.Context, uuid string) error
	DeleteUser(ctx context.Context, uuid string) error
}
