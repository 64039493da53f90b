package studentValidator

import (
	"github.com/gofiber/fiber/v2"

	studentController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/student"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
)

// Enroll validates the enrollment payload
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(studentController.EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// CompleteLesson validates the lesson completion payload
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(studentController.CompleteLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompleteLesson", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz submission payload
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(studentController.SubmitQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmitQuiz", reqData)
		return c.Next()
	}
}
