package catalog

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
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

func seedCourseWithLessons(t *testing.T, db *gorm.DB, lessonCount int) (*courseModels.Course, []courseModels.Lesson) {
	t.Helper()
	course := courseModels.Course{Title: "Course", Description: "d", Category: "c", InstructorID: 1}
	require.NoError(t, db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("L%d", i+1),
			ContentType: courseModels.ContentTypeText,
			ContentURL:  "some text content",
			OrderIndex:  i,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}
	return &course, lessons
}

func TestGetCourseNotFound(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)

	_, err := store.GetCourse(123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLessonMembership(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	course, lessons := seedCourseWithLessons(t, db, 2)
	other, _ := seedCourseWithLessons(t, db, 1)

	ok, err := store.IsLessonOfCourse(lessons[0].ID, course.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsLessonOfCourse(lessons[0].ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	total, err := store.CountLessons(course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGetLessonsOfCourseOrdered(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	course, _ := seedCourseWithLessons(t, db, 3)

	lessons, err := store.GetLessonsOfCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	for i, lesson := range lessons {
		assert.Equal(t, i, lesson.OrderIndex)
	}
}

func TestUpsertQuizCreatesAndReplaces(t *testing.T) {
	db := setupDB(t)
	quizzes := NewQuizStore(db)
	course, _ := seedCourseWithLessons(t, db, 1)

	quiz, err := quizzes.UpsertQuiz(course.ID, []QuestionInput{
		{QuestionText: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{QuestionText: "Q2", Options: []string{"C", "D"}, CorrectAnswer: "D"},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, quiz.TotalMarks)
	assert.Equal(t, 1, quiz.PassingMarks)

	// Replacing swaps the whole question set
	quiz, err = quizzes.UpsertQuiz(course.ID, []QuestionInput{
		{QuestionText: "Q3", Options: []string{"E", "F", "G"}, CorrectAnswer: "E"},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, quiz.TotalMarks)

	stored, err := quizzes.GetQuizByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, stored.Questions, 1)
	assert.Equal(t, "Q3", stored.Questions[0].QuestionText)

	var options []string
	require.NoError(t, json.Unmarshal(stored.Questions[0].Options, &options))
	assert.Equal(t, []string{"E", "F", "G"}, options)

	var questionCount int64
	db.Model(&courseModels.Question{}).Count(&questionCount)
	assert.Equal(t, int64(1), questionCount)
}

func TestGetQuizByCourseNotFound(t *testing.T) {
	db := setupDB(t)
	quizzes := NewQuizStore(db)

	_, err := quizzes.GetQuizByCourse(77)
	assert.ErrorIs(t, err, ErrNotFound)
}
