package studentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
	studentController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/student"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/studentRoutes"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/catalog"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:           "testsecret",
		SaltRound:        4,
		OTPExpiryMinutes: 10,
	}

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

	app := fiber.New()
	studentRoutes.SetupStudentRoutes(app, studentController.NewStudentController(db))

	return &testEnv{app: app, db: db}
}

func (env *testEnv) seedStudent(t *testing.T, verified bool) (*models.Student, string) {
	t.Helper()
	student := models.Student{
		Name:              "Ravi",
		Email:             fmt.Sprintf("ravi-%s@example.com", t.Name()),
		Password:          "hashed",
		IsAccountVerified: verified,
	}
	require.NoError(t, env.db.Create(&student).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, middleware.RoleStudent, student.Email)
	require.NoError(t, err)
	return &student, token
}

func (env *testEnv) seedCourse(t *testing.T, lessonCount int) (*courseModels.Course, []courseModels.Lesson) {
	t.Helper()
	course := courseModels.Course{Title: "REST APIs", Description: "d", Category: "c", InstructorID: 1, IsPublished: true}
	require.NoError(t, env.db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("L%d", i+1),
			ContentType: courseModels.ContentTypeText,
			ContentURL:  "content",
			OrderIndex:  i,
		}
		require.NoError(t, env.db.Create(&lesson).Error)
		lessons = append(lessons, lesson)
	}
	return &course, lessons
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*fiber.Map, int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req)
	require.NoError(t, err)

	var result fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return &result, resp.StatusCode
}

func TestEnrollEndpoint(t *testing.T) {
	env := setupEnv(t)
	student, token := env.seedStudent(t, true)
	course, _ := env.seedCourse(t, 2)

	body := map[string]interface{}{"courseId": course.ID}

	result, status := env.request(t, "POST", "/student/enroll", token, body)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, (*result)["status"])
	assert.Equal(t, "Enrolled successfully", (*result)["message"])

	// Enrolling again is a no-op, not an error
	_, status = env.request(t, "POST", "/student/enroll", token, body)
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	env.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ?", student.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnverifiedEndpoint(t *testing.T) {
	env := setupEnv(t)
	_, token := env.seedStudent(t, false)
	course, _ := env.seedCourse(t, 1)

	result, status := env.request(t, "POST", "/student/enroll", token, map[string]interface{}{"courseId": course.ID})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, (*result)["status"])
}

func TestEnrollRequiresAuth(t *testing.T) {
	env := setupEnv(t)
	course, _ := env.seedCourse(t, 1)

	_, status := env.request(t, "POST", "/student/enroll", "", map[string]interface{}{"courseId": course.ID})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCompleteLessonEndpoint(t *testing.T) {
	env := setupEnv(t)
	_, token := env.seedStudent(t, true)
	course, lessons := env.seedCourse(t, 2)

	_, status := env.request(t, "POST", "/student/enroll", token, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, fiber.StatusOK, status)

	result, status := env.request(t, "POST", "/student/complete-lesson", token, map[string]interface{}{
		"courseId": course.ID,
		"lessonId": lessons[0].ID,
	})
	assert.Equal(t, fiber.StatusOK, status)
	data := (*result)["data"].(map[string]interface{})
	assert.Equal(t, float64(50), data["progress"])

	// Lesson from another course is rejected
	other, otherLessons := env.seedCourse(t, 1)
	_ = other
	result, status = env.request(t, "POST", "/student/complete-lesson", token, map[string]interface{}{
		"courseId": course.ID,
		"lessonId": otherLessons[0].ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, (*result)["status"])
}

func TestCompletedLessonsEndpoint(t *testing.T) {
	env := setupEnv(t)
	_, token := env.seedStudent(t, true)
	course, lessons := env.seedCourse(t, 2)

	_, status := env.request(t, "POST", "/student/enroll", token, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, fiber.StatusOK, status)
	_, status = env.request(t, "POST", "/student/complete-lesson", token, map[string]interface{}{
		"courseId": course.ID,
		"lessonId": lessons[1].ID,
	})
	require.Equal(t, fiber.StatusOK, status)

	result, status := env.request(t, "GET", fmt.Sprintf("/student/completed-lessons/%d", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	data := (*result)["data"].(map[string]interface{})
	ids := data["completedLessonIds"].([]interface{})
	require.Len(t, ids, 1)
	assert.Equal(t, float64(lessons[1].ID), ids[0])
}

func TestSubmitQuizEndpoint(t *testing.T) {
	env := setupEnv(t)
	_, token := env.seedStudent(t, true)
	course, _ := env.seedCourse(t, 1)

	_, err := catalog.NewQuizStore(env.db).UpsertQuiz(course.ID, []catalog.QuestionInput{
		{QuestionText: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{QuestionText: "Q2", Options: []string{"C", "D"}, CorrectAnswer: "D"},
	}, 1)
	require.NoError(t, err)

	result, status := env.request(t, "POST", "/quiz/submit", token, map[string]interface{}{
		"courseId": course.ID,
		"answers":  []string{"A", "C"},
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Passed!", (*result)["message"])
	data := (*result)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, true, data["passed"])

	// Missing quiz yields 404
	empty, _ := env.seedCourse(t, 0)
	result, status = env.request(t, "POST", "/quiz/submit", token, map[string]interface{}{
		"courseId": empty.ID,
		"answers":  []string{},
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, (*result)["status"])
}
