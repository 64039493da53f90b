package catalog

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
)

// QuizStore manages the single quiz each course may carry
type QuizStore struct {
	db *gorm.DB
}

func NewQuizStore(db *gorm.DB) *QuizStore {
	return &QuizStore{db: db}
}

// QuestionInput is a question supplied by a mentor at quiz creation
type QuestionInput struct {
	QuestionText  string   `json:"questionText" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// GetQuizByCourse fetches a course's quiz with its questions in order
func (s *QuizStore) GetQuizByCourse(courseID uint) (*courseModels.Quiz, error) {
	var quiz courseModels.Quiz
	err := s.db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc, id asc")
		}).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// UpsertQuiz creates the course's quiz or replaces it in full. Total
// marks are derived from the question count, one mark per question.
func (s *QuizStore) UpsertQuiz(courseID uint, questions []QuestionInput, passingMarks int) (*courseModels.Quiz, error) {
	var saved *courseModels.Quiz

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quiz courseModels.Quiz
		err := tx.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&quiz).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			quiz = courseModels.Quiz{CourseID: courseID}
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Replacing: drop the previous question set
			if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&courseModels.Question{}).Error; err != nil {
				return err
			}
		}

		quiz.TotalMarks = len(questions)
		quiz.PassingMarks = passingMarks
		quiz.UpdatedAt = time.Now()
		if err := tx.Model(&courseModels.Quiz{}).Where("id = ?", quiz.ID).
			Updates(map[string]interface{}{
				"total_marks":   quiz.TotalMarks,
				"passing_marks": quiz.PassingMarks,
			}).Error; err != nil {
			return err
		}

		for i, q := range questions {
			opts, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			question := courseModels.Question{
				QuizID:        quiz.ID,
				QuestionText:  q.QuestionText,
				Options:       datatypes.JSON(opts),
				CorrectAnswer: q.CorrectAnswer,
				OrderIndex:    i,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			quiz.Questions = append(quiz.Questions, question)
		}

		saved = &quiz
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
