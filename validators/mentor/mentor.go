package mentorValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	mentorController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/mentor"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
)

// UpdateProfile validates the partial mentor profile payload
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(mentorController.UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			trimmed := strings.TrimSpace(*reqData.Name)
			reqData.Name = &trimmed
			if trimmed == "" {
				errors["name"] = "Name cannot be empty!"
			} else if len(trimmed) > 100 {
				errors["name"] = "Name must not exceed 100 characters!"
			}
		}
		if reqData.Expertise != nil && len(reqData.Expertise) == 0 {
			errors["expertise"] = "At least one expertise area is required!"
		}
		if reqData.Experience != nil && *reqData.Experience < 0 {
			errors["experience"] = "Experience cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
