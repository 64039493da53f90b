package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz holds a course's single quiz. One quiz per course, replaced in
// full when a mentor re-creates it.
type Quiz struct {
	gorm.Model
	CourseID     uint       `json:"course_id" gorm:"uniqueIndex;not null"`
	TotalMarks   int        `json:"total_marks" gorm:"default:0"` // one mark per question
	PassingMarks int        `json:"passing_marks" gorm:"default:0"`
	Questions    []Question `json:"questions" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	IsDeleted    bool       `gorm:"default:false"`
}

// Question is a single multiple-choice entry of a quiz
type Question struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options"` // JSON array of option strings
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
}
