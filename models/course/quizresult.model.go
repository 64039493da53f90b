package course

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult keeps the latest scored attempt per (student, course).
// Resubmissions overwrite; no attempt history is retained.
type QuizResult struct {
	gorm.Model
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_result_student_course;not null"`
	CourseID    uint      `json:"course_id" gorm:"uniqueIndex:idx_result_student_course;not null"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Passed      bool      `json:"passed"`
	AttemptedAt time.Time `json:"attempted_at"`
}
