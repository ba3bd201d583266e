package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID     uint   `gorm:"primaryKey"`
	ClubID uint   `gorm:"not null;index"`
	Name   string `gorm:"not null"`
	Par    int    `gorm:"not null"`
	Holes  []Hole `gorm:"foreignKey:CourseID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Hole struct {
	ID         uint `gorm:"primaryKey"`
	CourseID   uint `gorm:"not null;index"`
	HoleNumber int  `gorm:"not null"`
	Par        int  `gorm:"not null"`
	// StrokeIndex is nullable; unrated holes never receive a remainder
	// stroke during allocation.
	StrokeIndex *int
}

type CourseDAO struct {
	db *gorm.DB
}

func NewCourseDAO(db *gorm.DB) *CourseDAO {
	return &CourseDAO{
		db: db,
	}
}

func (d *CourseDAO) FindByID(ctx context.Context, id uint) (Course, error) {
	var course Course

	result := d.db.WithContext(ctx).
		Preload("Holes", func(db *gorm.DB) *gorm.DB {
			return db.Order("hole_number ASC")
		}).
		First(&course, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Course{}, ErrCourseNotFound
		}

		return Course{}, result.Error
	}

	return course, nil
}

func (d *CourseDAO) FindAll(ctx context.Context) ([]Course, error) {
	var courses []Course

	result := d.db.WithContext(ctx).Order("name ASC").Find(&courses)
	if result.Error != nil {
		return nil, result.Error
	}

	return courses, nil
}
