package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	courseController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
)

// AddLesson validates the lesson creation payload
func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.AddLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentURL = strings.TrimSpace(reqData.ContentURL)
		if reqData.ContentType == "" {
			reqData.ContentType = courseModels.ContentTypeVideo
		}

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}
		if reqData.ContentURL == "" {
			errors["contentUrl"] = "Content is required!"
		}

		switch reqData.ContentType {
		case courseModels.ContentTypeVideo, courseModels.ContentTypeText:
		default:
			errors["contentType"] = "Content type must be video or text!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
