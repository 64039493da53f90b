// Package enrollment implements the state machine tying students to
// courses: enrollment, lesson completion, progress recomputation and
// quiz scoring. It is the sole writer of enrollment, completion and
// quiz-result records.
package enrollment

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/catalog"
)

// Engine orchestrates all enrollment and progress mutations. The
// authenticated student id is an explicit argument on every call.
type Engine struct {
	db      *gorm.DB
	catalog *catalog.Store
	quizzes *catalog.QuizStore
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{
		db:      db,
		catalog: catalog.NewStore(db),
		quizzes: catalog.NewQuizStore(db),
	}
}

// Catalog exposes the engine's course/lesson read store
func (e *Engine) Catalog() *catalog.Store {
	return e.catalog
}

// Quizzes exposes the engine's quiz store
func (e *Engine) Quizzes() *catalog.QuizStore {
	return e.quizzes
}

// QuizOutcome is the scored result of a quiz submission
type QuizOutcome struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}

// EnrolledCourse is a student-side projection of the enrollment relation
type EnrolledCourse struct {
	CourseID   uint      `json:"course_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Progress   int       `json:"progress"`
	Completed  bool      `json:"completed"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Enroll registers a verified student into an existing course. Already
// being enrolled is not an error; the call is an idempotent no-op.
func (e *Engine) Enroll(studentID, courseID uint) error {
	var student models.Student
	if err := e.db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Student not found")
		}
		return err
	}
	if !student.IsAccountVerified {
		return forbidden("Verify your account before enrolling in any course.")
	}

	if _, err := e.catalog.GetCourse(courseID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return notFound("Course not found")
		}
		return err
	}

	return e.db.Transaction(func(tx *gorm.DB) error {
		var existing courseModels.Enrollment
		err := tx.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
			First(&existing).Error
		if err == nil {
			return nil // already enrolled
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := courseModels.Enrollment{
			StudentID:  studentID,
			CourseID:   courseID,
			EnrolledAt: time.Now(),
			Progress:   0,
		}
		if err := tx.Create(&record).Error; err != nil {
			// A concurrent enroll may have won the unique index race
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return nil
	})
}

// MarkLessonComplete records a lesson completion and recomputes the
// student's progress for the course. Returns the updated progress.
func (e *Engine) MarkLessonComplete(studentID, courseID, lessonID uint) (int, error) {
	lesson, err := e.catalog.GetLesson(lessonID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return 0, notFound("Lesson not found")
		}
		return 0, err
	}
	if lesson.CourseID != courseID {
		return 0, invalidReference("Lesson does not belong to this course")
	}

	progress := 0
	err = e.db.Transaction(func(tx *gorm.DB) error {
		var enrolled courseModels.Enrollment
		err := tx.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
			First(&enrolled).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Not enrolled in this course")
		}
		if err != nil {
			return err
		}

		var existing courseModels.LessonCompletion
		err = tx.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record := courseModels.LessonCompletion{
				StudentID:   studentID,
				CourseID:    courseID,
				LessonID:    lessonID,
				CompletedAt: time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		} else if err != nil {
			return err
		}

		var completedCount int64
		if err := tx.Model(&courseModels.LessonCompletion{}).
			Where("student_id = ? AND course_id = ?", studentID, courseID).
			Count(&completedCount).Error; err != nil {
			return err
		}

		var totalLessons int64
		if err := tx.Model(&courseModels.Lesson{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Count(&totalLessons).Error; err != nil {
			return err
		}

		progress = computeProgress(completedCount, totalLessons)

		updates := map[string]interface{}{
			"progress":  progress,
			"completed": progress >= 100,
		}
		if progress >= 100 && !enrolled.Completed {
			now := time.Now()
			updates["completed_at"] = &now
		}
		return tx.Model(&courseModels.Enrollment{}).
			Where("id = ?", enrolled.ID).
			Updates(updates).Error
	})
	if err != nil {
		return 0, err
	}
	return progress, nil
}

// computeProgress converts a completion count into a whole percentage.
// A course without lessons has no measurable progress and stays at 0.
func computeProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completed) / float64(total) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// GetCompletedLessons lists the lesson ids the student has finished in
// a course. Read-only; an empty list is a valid answer.
func (e *Engine) GetCompletedLessons(studentID, courseID uint) ([]uint, error) {
	var student models.Student
	if err := e.db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Student not found")
		}
		return nil, err
	}

	lessonIDs := []uint{}
	err := e.db.Model(&courseModels.LessonCompletion{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("completed_at asc").
		Pluck("lesson_id", &lessonIDs).Error
	if err != nil {
		return nil, err
	}
	return lessonIDs, nil
}

// SubmitQuiz scores a student's answers against the course quiz and
// stores the outcome, replacing any earlier attempt. Quiz results do
// not feed back into lesson progress.
func (e *Engine) SubmitQuiz(studentID, courseID uint, answers []string) (QuizOutcome, error) {
	var student models.Student
	if err := e.db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuizOutcome{}, notFound("Student not found")
		}
		return QuizOutcome{}, err
	}

	quiz, err := e.quizzes.GetQuizByCourse(courseID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return QuizOutcome{}, notFound("Quiz not found")
		}
		return QuizOutcome{}, err
	}

	if len(answers) > len(quiz.Questions) {
		return QuizOutcome{}, invalidInput("More answers than questions")
	}

	score := 0
	for i, q := range quiz.Questions {
		if i >= len(answers) {
			break
		}
		// An empty string means the question was skipped
		if answers[i] != "" && answers[i] == q.CorrectAnswer {
			score++
		}
	}

	total := quiz.TotalMarks
	if total == 0 {
		total = len(quiz.Questions)
	}

	outcome := QuizOutcome{
		Score:  score,
		Total:  total,
		Passed: score >= quiz.PassingMarks,
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		var existing courseModels.QuizResult
		err := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record := courseModels.QuizResult{
				StudentID:   studentID,
				CourseID:    courseID,
				Score:       outcome.Score,
				Total:       outcome.Total,
				Passed:      outcome.Passed,
				AttemptedAt: time.Now(),
			}
			return tx.Create(&record).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&courseModels.QuizResult{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"score":        outcome.Score,
				"total":        outcome.Total,
				"passed":       outcome.Passed,
				"attempted_at": time.Now(),
			}).Error
	})
	if err != nil {
		return QuizOutcome{}, err
	}
	return outcome, nil
}

// GetEnrollments projects the canonical enrollment relation into the
// student-facing course list
func (e *Engine) GetEnrollments(studentID uint) ([]EnrolledCourse, error) {
	var student models.Student
	if err := e.db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Student not found")
		}
		return nil, err
	}

	var rows []courseModels.Enrollment
	if err := e.db.Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("enrolled_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	courses := []EnrolledCourse{}
	for _, row := range rows {
		c, err := e.catalog.GetCourse(row.CourseID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue // course removed after enrollment
			}
			return nil, err
		}
		courses = append(courses, EnrolledCourse{
			CourseID:   row.CourseID,
			Title:      c.Title,
			Category:   c.Category,
			Progress:   row.Progress,
			Completed:  row.Completed,
			EnrolledAt: row.EnrolledAt,
		})
	}
	return courses, nil
}

// IsEnrolled reports whether the student holds an enrollment for the course
func (e *Engine) IsEnrolled(studentID, courseID uint) (bool, error) {
	var n int64
	err := e.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Count(&n).Error
	return n > 0, err
}

// EnrolledStudents is the course-side read index over the enrollment
// relation, used for mentor-facing course details
func (e *Engine) EnrolledStudents(courseID uint) ([]models.Student, error) {
	var students []models.Student
	err := e.db.
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ? AND enrollments.is_deleted = ?", courseID, false).
		Where("students.is_deleted = ?", false).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
