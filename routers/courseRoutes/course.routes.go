package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	courseValidator "github.com/venu-chandaka/online-learning-app-insightquest-internship/validators/course"
)

// SetupCourseRoutes registers course authoring, lesson and quiz routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Mentor authoring
	courseGroup.Post("/create", middleware.MentorAuth, courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/update", middleware.MentorAuth, courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Put("/:id/toggle-publish", middleware.MentorAuth, courseValidator.CourseIDParam("id"), courseController.TogglePublish)
	courseGroup.Get("/my-courses", middleware.MentorAuth, courseController.GetMentorCourses)

	// Listing and details
	courseGroup.Get("/all", courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.AnyAuth, courseValidator.CourseIDParam("id"), courseController.GetCourseDetails)

	// Lessons
	lessonGroup := app.Group("/lesson")
	lessonGroup.Post("/add", middleware.MentorAuth, courseValidator.AddLesson(), courseController.AddLesson)
	lessonGroup.Get("/:courseId", middleware.AnyAuth, courseValidator.CourseIDParam("courseId"), courseController.GetLessonsByCourse)

	// Quiz authoring and viewing
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/create", middleware.MentorAuth, courseValidator.CreateQuiz(), courseController.CreateQuiz)
	quizGroup.Get("/:courseId", middleware.AnyAuth, courseValidator.CourseIDParam("courseId"), courseController.GetQuiz)
}
