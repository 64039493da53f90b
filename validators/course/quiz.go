package courseValidator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	courseController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
)

var validate = validator.New()

// CreateQuiz validates the create-or-replace quiz payload
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fmt.Sprintf("Failed validation: %s", fieldErr.Tag())
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		// The stated correct answer must be one of the options
		errors := make(map[string]string)
		for i, q := range reqData.Questions {
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				errors[fmt.Sprintf("questions[%d].correctAnswer", i)] = "Correct answer must be one of the options!"
			}
		}
		if reqData.PassingMarks > len(reqData.Questions) {
			errors["passingMarks"] = "Passing marks cannot exceed the question count!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		for i := range reqData.Questions {
			reqData.Questions[i].QuestionText = strings.TrimSpace(reqData.Questions[i].QuestionText)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
