package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository"
)

type CourseService struct {
	repo CourseRepository
}

func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{
		repo: repo,
	}
}

func (s *CourseService) GetCourse(ctx context.Context, id uint) (domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domain.Course{}, ErrCourseNotFound
		}

		return domain.Course{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return courses, nil
}
