package domain

import (
	"context"
	"time"
)

type Course struct {
	UUID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"uuid"`
	Name            string    `gorm:"unique;not null;size:100" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	NumberOfLessons int       `gorm:"not null" json:"number_of_lessons"`
	IsDeactivated   bool      `gorm:"not null;default:false" json:"is_deactivated"`
	TeacherUUID     string    `gorm:"type:uuid;not null;index" json:"teacher_uuid"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher     *User        `gorm:"foreignKey:TeacherUUID" json:"teacher,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:CourseUUID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourseByUUID(ctx context.Context, uuid string) (*Course, error)
	// GetCourseByUUIDWithFullInfo also loads the teacher and the
	// enrollment roster with its student sides.
	GetCourseByUUIDWithFullInfo(ctx context.Context, uuid string) (*Course, error)
	GetAllActiveCourses(ctx context.Context) ([]Course, error)
	UpdateCourse(ctx context.Context, course *Course) error
	DeleteCourse(ctx context.Context, uuid string) error
}

type CourseUseCase interface {
	CreateCourse(ctx context.Context, course *Course) (string, error)
	GetAllActiveCourses(ctx context.Context) ([]Course, error)
	GetFullCourseByUUID(ctx context.Context, uuid string) (*Course, error)
	GetEnrollmentsByCourseUUID(ctx context.Context, uuid string) ([]Enrollment, error)
	UpdateCourse(ctx context.Context, uuid string, course Course, requesterUUID string) error
	DeactivateCourse(ctx context.Context, uuid, requesterUUID string) error
	DeleteCourse(ctx context.Context, uuid string) error
}
