package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/validation"
)

// CourseInput is the payload for creating a course. The owner always comes from
// the caller, never from the payload.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// CoursePatch is a partial update. Nil fields are left unchanged.
type CoursePatch struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// CourseService handles course operations.
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	CreateCourse(ctx context.Context, caller *model.User, in CourseInput) (*model.Course, error)
	UpdateCourse(ctx context.Context, caller *model.User, id string, patch CoursePatch) error
	DeleteCourse(ctx context.Context, caller *model.User, id string) error
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new course service.
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCoursesWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// GetCourse looks a course up by its raw path id. Ids that are not positive
// integers cannot exist and are reported as not found.
func (s *courseService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	notFound := apperrors.NotFound(fmt.Sprintf("Course with id: %s not found.", id))

	courseID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || courseID == 0 {
		return nil, notFound
	}

	course, err := s.repo.FindCourseByID(ctx, uint(courseID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

func (s *courseService) CreateCourse(ctx context.Context, caller *model.User, in CourseInput) (*model.Course, error) {
	messages, err := validation.Run(ctx, courseRules(in))
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, apperrors.Validation(messages)
	}

	course := &model.Course{
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   in.EstimatedTime,
		MaterialsNeeded: in.MaterialsNeeded,
		UserID:          caller.ID,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// UpdateCourse checks existence, then ownership, then the supplied fields,
// before writing anything.
func (s *courseService) UpdateCourse(ctx context.Context, caller *model.User, id string, patch CoursePatch) error {
	course, err := s.ownedCourse(ctx, caller, id, "update")
	if err != nil {
		return err
	}

	messages, err := validation.Run(ctx, coursePatchRules(patch))
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return apperrors.Validation(messages)
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.EstimatedTime != nil {
		course.EstimatedTime = patch.EstimatedTime
	}
	if patch.MaterialsNeeded != nil {
		course.MaterialsNeeded = patch.MaterialsNeeded
	}

	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (s *courseService) DeleteCourse(ctx context.Context, caller *model.User, id string) error {
	course, err := s.ownedCourse(ctx, caller, id, "delete")
	if err != nil {
		return err
	}

	if err := s.repo.DeleteCourse(ctx, course.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf("Course with id: %s not found.", id))
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (s *courseService) ownedCourse(ctx context.Context, caller *model.User, id, action string) (*model.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.UserID != caller.ID {
		return nil, apperrors.Forbidden(
			fmt.Sprintf("Sorry %s, you can only %s your own courses.", caller.FirstName, action),
		)
	}
	return course, nil
}
