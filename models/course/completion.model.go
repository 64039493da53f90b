package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonCompletion records that a student finished a lesson of a
// course. The unique index makes duplicate completions a no-op even
// under concurrent retries.
type LessonCompletion struct {
	gorm.Model
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_completion_student_lesson;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	LessonID    uint      `json:"lesson_id" gorm:"uniqueIndex:idx_completion_student_lesson;not null"`
	CompletedAt time.Time `json:"completed_at"`
}
