package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courseapi/internal/model"
)

// CourseRepository defines course persistence operations. Reads load the owner.
type CourseRepository interface {
	ListCoursesWithOwner(ctx context.Context) ([]model.Course, error)
	FindCourseByID(ctx context.Context, id uint) (*model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) error
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// ListCoursesWithOwner returns every course ordered by id, each with its owner.
func (r *courseRepository) ListCoursesWithOwner(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindCourseByID finds a course and its owner, or returns ErrNotFound.
func (r *courseRepository) FindCourseByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Preload("User").First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *courseRepository) CreateCourse(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(course).Error
}

// UpdateCourse writes the editable columns of course. The owner is never changed.
func (r *courseRepository) UpdateCourse(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).
		Model(course).
		Select("Title", "Description", "EstimatedTime", "MaterialsNeeded").
		Updates(course).Error
}

// DeleteCourse removes the course, or returns ErrNotFound when nothing matched.
func (r *courseRepository) DeleteCourse(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
