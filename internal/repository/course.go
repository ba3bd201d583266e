package repository

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository/dao"
)

var ErrCourseNotFound = dao.ErrCourseNotFound

type CourseDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Course, error)
	FindAll(ctx context.Context) ([]dao.Course, error)
}

type CourseRepository struct {
	dao CourseDAO
}

func NewCourseRepository(dao CourseDAO) *CourseRepository {
	return &CourseRepository{
		dao: dao,
	}
}

func courseDaoToDomain(c dao.Course) domain.Course {
	course := domain.Course{
		ID:        c.ID,
		ClubID:    c.ClubID,
		Name:      c.Name,
		Par:       c.Par,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if len(c.Holes) > 0 {
		course.Holes = make([]domain.Hole, len(c.Holes))
		for i, h := range c.Holes {
			course.Holes[i] = holeDaoToDomain(h)
		}
	}

	return course
}

func holeDaoToDomain(h dao.Hole) domain.Hole {
	return domain.Hole{
		ID:          h.ID,
		CourseID:    h.CourseID,
		HoleNumber:  h.HoleNumber,
		Par:         h.Par,
		StrokeIndex: h.StrokeIndex,
	}
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (domain.Course, error) {
	course, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return courseDaoToDomain(course), nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	courses, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.Course, len(courses))
	for i, c := range courses {
		out[i] = courseDaoToDomain(c)
	}

	return out, nil
}
