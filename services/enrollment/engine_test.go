package enrollment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/catalog"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, verified bool) *models.Student {
	t.Helper()
	student := models.Student{
		Name:              "Asha",
		Email:             fmt.Sprintf("asha-%s@example.com", t.Name()),
		Password:          "hashed",
		IsAccountVerified: verified,
	}
	require.NoError(t, db.Create(&student).Error)
	return &student
}

func seedCourse(t *testing.T, db *gorm.DB, lessonCount int) (*courseModels.Course, []courseModels.Lesson) {
	t.Helper()
	course := courseModels.Course{
		Title:        "Go Fundamentals",
		Description:  "An introduction",
		Category:     "Programming",
		InstructorID: 1,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			ContentType: courseModels.ContentTypeVideo,
			ContentURL:  "https://videos.example.com/lesson",
			OrderIndex:  i,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}
	return &course, lessons
}

func seedQuiz(t *testing.T, db *gorm.DB, courseID uint, passingMarks int, correct ...string) {
	t.Helper()
	questions := make([]catalog.QuestionInput, len(correct))
	for i, answer := range correct {
		questions[i] = catalog.QuestionInput{
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			Options:       []string{answer, "X", "Y"},
			CorrectAnswer: answer,
		}
	}
	_, err := catalog.NewQuizStore(db).UpsertQuiz(courseID, questions, passingMarks)
	require.NoError(t, err)
}

func TestEnrollIdempotent(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 2)

	require.NoError(t, eng.Enroll(student.ID, course.ID))
	require.NoError(t, eng.Enroll(student.ID, course.ID))

	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	roster, err := eng.EnrolledStudents(course.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 1)
}

// The racing-loser paths in Enroll and MarkLessonComplete depend on the
// driver's unique-violation error surfacing as gorm.ErrDuplicatedKey.
func TestDuplicateInsertTranslatesToDuplicatedKey(t *testing.T) {
	db := setupDB(t)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 1)

	first := courseModels.Enrollment{StudentID: student.ID, CourseID: course.ID}
	require.NoError(t, db.Create(&first).Error)
	err := db.Create(&courseModels.Enrollment{StudentID: student.ID, CourseID: course.ID}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	completion := courseModels.LessonCompletion{StudentID: student.ID, CourseID: course.ID, LessonID: lessons[0].ID}
	require.NoError(t, db.Create(&completion).Error)
	err = db.Create(&courseModels.LessonCompletion{StudentID: student.ID, CourseID: course.ID, LessonID: lessons[0].ID}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestEnrollUnverifiedForbidden(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, false)
	course, _ := seedCourse(t, db, 1)

	err := eng.Enroll(student.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))

	var count int64
	db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)

	err := eng.Enroll(student.ID, 999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestMarkLessonCompleteProgress(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 3)
	require.NoError(t, eng.Enroll(student.ID, course.ID))

	progress, err := eng.MarkLessonComplete(student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 33, progress)

	progress, err = eng.MarkLessonComplete(student.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 67, progress)

	progress, err = eng.MarkLessonComplete(student.ID, course.ID, lessons[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progress)

	var enrolled courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&enrolled).Error)
	assert.Equal(t, 100, enrolled.Progress)
	assert.True(t, enrolled.Completed)
	assert.NotNil(t, enrolled.CompletedAt)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 2)
	require.NoError(t, eng.Enroll(student.ID, course.ID))

	first, err := eng.MarkLessonComplete(student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	again, err := eng.MarkLessonComplete(student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	var count int64
	db.Model(&courseModels.LessonCompletion{}).
		Where("student_id = ? AND lesson_id = ?", student.ID, lessons[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkLessonCompleteWrongCourse(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course1, _ := seedCourse(t, db, 1)
	_, lessons2 := seedCourse(t, db, 1)
	require.NoError(t, eng.Enroll(student.ID, course1.ID))

	_, err := eng.MarkLessonComplete(student.ID, course1.ID, lessons2[0].ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalidReference, KindOf(err))

	var count int64
	db.Model(&courseModels.LessonCompletion{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMarkLessonCompleteWithoutEnrollment(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 1)

	_, err := eng.MarkLessonComplete(student.ID, course.ID, lessons[0].ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestComputeProgress(t *testing.T) {
	cases := []struct {
		completed, total int64
		want             int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 2, 50},
		{0, 0, 0}, // a course without lessons has no measurable progress
		{5, 3, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, computeProgress(tc.completed, tc.total),
			"completed=%d total=%d", tc.completed, tc.total)
	}
}

func TestSubmitQuizScoring(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 1)
	require.NoError(t, eng.Enroll(student.ID, course.ID))
	seedQuiz(t, db, course.ID, 2, "A", "B")

	outcome, err := eng.SubmitQuiz(student.ID, course.ID, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Score)
	assert.Equal(t, 2, outcome.Total)
	assert.True(t, outcome.Passed)

	outcome, err = eng.SubmitQuiz(student.ID, course.ID, []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)
	assert.False(t, outcome.Passed)
}

func TestSubmitQuizEmptyAnswerIsWrong(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 1)
	seedQuiz(t, db, course.ID, 1, "A", "B")

	outcome, err := eng.SubmitQuiz(student.ID, course.ID, []string{"", "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)
}

func TestSubmitQuizOverwritesResult(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 1)
	seedQuiz(t, db, course.ID, 2, "A", "B")

	_, err := eng.SubmitQuiz(student.ID, course.ID, []string{"A", "B"})
	require.NoError(t, err)
	_, err = eng.SubmitQuiz(student.ID, course.ID, []string{"X", "X"})
	require.NoError(t, err)

	var results []courseModels.QuizResult
	db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).Find(&results)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Score)
	assert.False(t, results[0].Passed)
}

func TestSubmitQuizNotFound(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 1)

	_, err := eng.SubmitQuiz(student.ID, course.ID, []string{"A"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSubmitQuizTooManyAnswers(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, _ := seedCourse(t, db, 1)
	seedQuiz(t, db, course.ID, 1, "A")

	_, err := eng.SubmitQuiz(student.ID, course.ID, []string{"A", "B"})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestGetCompletedLessons(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 3)
	require.NoError(t, eng.Enroll(student.ID, course.ID))

	ids, err := eng.GetCompletedLessons(student.ID, course.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = eng.MarkLessonComplete(student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = eng.MarkLessonComplete(student.ID, course.ID, lessons[2].ID)
	require.NoError(t, err)

	ids, err = eng.GetCompletedLessons(student.ID, course.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{lessons[0].ID, lessons[2].ID}, ids)
}

func TestGetCompletedLessonsStudentNotFound(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)

	_, err := eng.GetCompletedLessons(42, 1)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestEnrollmentLifecycle(t *testing.T) {
	db := setupDB(t)
	eng := NewEngine(db)
	student := seedStudent(t, db, true)
	course, lessons := seedCourse(t, db, 3)
	seedQuiz(t, db, course.ID, 1, "A", "B")

	require.NoError(t, eng.Enroll(student.ID, course.ID))

	wantProgress := []int{33, 67, 100}
	for i, lesson := range lessons {
		progress, err := eng.MarkLessonComplete(student.ID, course.ID, lesson.ID)
		require.NoError(t, err)
		assert.Equal(t, wantProgress[i], progress)
	}

	outcome, err := eng.SubmitQuiz(student.ID, course.ID, []string{"A", "X"})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)
	assert.True(t, outcome.Passed)

	enrolled, err := eng.GetEnrollments(student.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, course.ID, enrolled[0].CourseID)
	assert.Equal(t, 100, enrolled[0].Progress)
	assert.True(t, enrolled[0].Completed)
}
