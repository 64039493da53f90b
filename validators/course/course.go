package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	courseController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
)

// CourseIDParam parses and validates the :id route parameter
func CourseIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params(param))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// CreateCourse validates the course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Category = strings.TrimSpace(reqData.Category)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 || len(reqData.Title) > 100 {
			errors["title"] = "Title must be between 3 and 100 characters!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Level != "" {
			switch reqData.Level {
			case "Beginner", "Intermediate", "Advanced":
			default:
				errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the partial course edit payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Level != nil {
			switch *reqData.Level {
			case "Beginner", "Intermediate", "Advanced":
			default:
				errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
