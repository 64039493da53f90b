// Package catalog provides read access to course and lesson records
// plus the per-course quiz store. The enrollment engine consumes these
// contracts and never writes through them.
package catalog

import (
	"errors"

	"gorm.io/gorm"

	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
)

// ErrNotFound is returned when a course, lesson or quiz does not exist
var ErrNotFound = errors.New("catalog: record not found")

// Store reads course and lesson records
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetCourse fetches a course by id
func (s *Store) GetCourse(courseID uint) (*courseModels.Course, error) {
	var c courseModels.Course
	err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetLesson fetches a lesson by id
func (s *Store) GetLesson(lessonID uint) (*courseModels.Lesson, error) {
	var l courseModels.Lesson
	err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLessonsOfCourse returns a course's lessons in their defined order
func (s *Store) GetLessonsOfCourse(courseID uint) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	err := s.db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

// CountLessons returns the current lesson count of a course
func (s *Store) CountLessons(courseID uint) (int64, error) {
	var total int64
	err := s.db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error
	return total, err
}

// IsLessonOfCourse reports whether the lesson belongs to the course
func (s *Store) IsLessonOfCourse(lessonID, courseID uint) (bool, error) {
	var n int64
	err := s.db.Model(&courseModels.Lesson{}).
		Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		Count(&n).Error
	return n > 0, err
}
