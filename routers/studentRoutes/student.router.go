package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	studentController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/student"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	courseValidator "github.com/venu-chandaka/online-learning-app-insightquest-internship/validators/course"
	studentValidator "github.com/venu-chandaka/online-learning-app-insightquest-internship/validators/student"
)

// SetupStudentRoutes registers the student-facing enrollment routes
func SetupStudentRoutes(app *fiber.App, sc *studentController.StudentController) {
	studentGroup := app.Group("/student")

	studentGroup.Get("/get-data", middleware.StudentAuth, sc.GetStudentData)
	studentGroup.Get("/enrolled-courses", middleware.StudentAuth, sc.GetEnrolledCourses)
	studentGroup.Post("/enroll", middleware.StudentAuth, studentValidator.Enroll(), sc.Enroll)
	studentGroup.Post("/complete-lesson", middleware.StudentAuth, studentValidator.CompleteLesson(), sc.CompleteLesson)
	studentGroup.Get("/completed-lessons/:courseId", middleware.StudentAuth, courseValidator.CourseIDParam("courseId"), sc.GetCompletedLessons)

	// Quiz submission rides under /quiz next to the viewing routes
	app.Post("/quiz/submit", middleware.StudentAuth, studentValidator.SubmitQuiz(), sc.SubmitQuiz)
}
