package domain

import (
	"context"
	"time"
)

// Grade bounds enforced both at the binding layer and inside the rule
// engine.
const (
	GradeMin = 0
	GradeMax = 10
)

type Enrollment struct {
	UUID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"uuid"`
	CourseUUID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_user" json:"course_uuid"`
	UserUUID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_user" json:"user_uuid"`
	Grade         *int      `json:"grade,omitempty"`
	Attendance    *int      `json:"attendance,omitempty"`
	StudentReview *string   `gorm:"size:1000" json:"student_review,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Course *Course `gorm:"foreignKey:CourseUUID" json:"course,omitempty"`
	User   *User   `gorm:"foreignKey:UserUUID" json:"user,omitempty"`
}

// EnrollmentRepository is the store gateway for enrollments. GetEnrollment
// loads the course and user sides of the join and returns (nil, nil) when
// the pair is not enrolled.
type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
	GetEnrollment(ctx context.Context, courseUUID, userUUID string) (*Enrollment, error)
	UpdateAttendance(ctx context.Context, enrollment *Enrollment, attendance int) error
	UpdateGrade(ctx context.Context, enrollment *Enrollment, grade int) error
	UpdateReview(ctx context.Context, enrollment *Enrollment, review string) error
	DeleteEnrollment(ctx context.Context, enrollment *Enrollment) error
}

type EnrollmentUseCase interface {
	Enroll(ctx context.Context, courseUUID, userUUID string) error
	ControlAttendance(ctx context.Context, courseUUID, userUUID string, attendance int, requesterUUID string) error
	GradeStudent(ctx context.Context, courseUUID, userUUID string, grade int, requesterUUID string) error
	ReviewCourse(ctx context.Context, courseUUID, userUUID, review string) error
	Disenroll(ctx context.Context, courseUUID, userUUID string) error
}
