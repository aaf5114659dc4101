package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) GetEnrollment(ctx context.Context, courseUUID, userUUID string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("User").
		First(&enrollment, "course_uuid = ? AND user_uuid = ?", courseUUID, userUUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) UpdateAttendance(ctx context.Context, enrollment *domain.Enrollment, attendance int) error {
	return r.db.WithContext(ctx).Model(enrollment).Update("attendance", attendance).Error
}

func (r *enrollmentRepository) UpdateGrade(ctx context.Context, enrollment *domain.Enrollment, grade int) error {
	return r.db.WithContext(ctx).Model(enrollment).Update("grade", grade).Error
}

func (r *enrollmentRepository) UpdateReview(ctx context.Context, enrollment *domain.Enrollment, review string) error {
	return r.db.WithContext(ctx).Model(enrollment).Update("student_review", review).Error
}

func (r *enrollmentRepository) DeleteEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.db.WithContext(ctx).Delete(enrollment).Error
}
