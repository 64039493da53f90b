package authValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	authController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/auth"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Signup validates the student registration payload
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 2 || len(reqData.Name) > 100 {
			errors["name"] = "Name must be between 2 and 100 characters!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// MentorSignup validates the mentor registration payload
func MentorSignup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.MentorSignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}
		if len(reqData.Expertise) == 0 {
			errors["expertise"] = "At least one expertise area is required!"
		}
		if reqData.Experience < 0 {
			errors["experience"] = "Experience cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMentorSignup", reqData)
		return c.Next()
	}
}

// Login validates the shared login payload
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// SendResetOtp validates the reset-code request payload
func SendResetOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.SendResetOtpRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "A valid email is required!",
			})
		}

		c.Locals("validatedResetOtp", reqData)
		return c.Next()
	}
}

// ResetPassword validates the password-reset payload
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.ResetPasswordRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.Otp = strings.TrimSpace(reqData.Otp)

		if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "A valid email is required!"
		}
		if len(reqData.Otp) != 6 {
			errors["otp"] = "OTP must be a 6-digit code!"
		}
		if reqData.NewPassword == "" {
			errors["newPassword"] = "New password is required!"
		} else if len(reqData.NewPassword) < 6 {
			errors["newPassword"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}

// Otp validates the one-time code payload
func Otp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Otp string `json:"otp"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Otp = strings.TrimSpace(reqData.Otp)
		if len(reqData.Otp) != 6 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"otp": "OTP must be a 6-digit code!",
			})
		}

		c.Locals("validatedOtp", reqData)
		return c.Next()
	}
}
