package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) GetCourseByUUID(ctx context.Context, uuid string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).First(&course, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetCourseByUUIDWithFullInfo(ctx context.Context, uuid string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Enrollments.User").
		First(&course, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetAllActiveCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.db.WithContext(ctx).
		Where("is_deactivated = ?", false).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) DeleteCourse(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Delete(&domain.Course{}, "uuid = ?", uuid).Error
}
