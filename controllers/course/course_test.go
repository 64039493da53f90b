package courseController_test

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/courseRoutes"
)

func setupCourseApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func getWithToken(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestGetCourseDetailsAccess(t *testing.T) {
	app, db := setupCourseApp(t)

	mentor := models.Mentor{Name: "Priya", Email: "priya-details@example.com", Password: "hashed", IsAccountVerified: true}
	require.NoError(t, db.Create(&mentor).Error)
	mentorToken, err := middleware.GenerateJWT(mentor.ID, mentor.Name, middleware.RoleMentor, mentor.Email)
	require.NoError(t, err)

	course := courseModels.Course{Title: "Go Basics", Description: "d", Category: "c", InstructorID: mentor.ID, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	enrolled := models.Student{Name: "Asha", Email: "asha-details@example.com", Password: "hashed", IsAccountVerified: true}
	require.NoError(t, db.Create(&enrolled).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{
		StudentID: enrolled.ID, CourseID: course.ID, EnrolledAt: time.Now(),
	}).Error)
	enrolledToken, err := middleware.GenerateJWT(enrolled.ID, enrolled.Name, middleware.RoleStudent, enrolled.Email)
	require.NoError(t, err)

	outsider := models.Student{Name: "Ravi", Email: "ravi-details@example.com", Password: "hashed", IsAccountVerified: true}
	require.NoError(t, db.Create(&outsider).Error)
	outsiderToken, err := middleware.GenerateJWT(outsider.ID, outsider.Name, middleware.RoleStudent, outsider.Email)
	require.NoError(t, err)

	path := fmt.Sprintf("/course/%d", course.ID)
	assert.Equal(t, fiber.StatusOK, getWithToken(t, app, path, mentorToken))
	assert.Equal(t, fiber.StatusOK, getWithToken(t, app, path, enrolledToken))
	assert.Equal(t, fiber.StatusForbidden, getWithToken(t, app, path, outsiderToken))
}
