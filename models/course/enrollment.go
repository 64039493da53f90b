package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is the canonical record of a student's membership in a
// course. A course's student roster and a student's course list are
// both reads over this relation, so the two views cannot drift apart.
type Enrollment struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	Progress    int        `json:"progress" gorm:"default:0"` // 0-100, lesson completion percentage
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
