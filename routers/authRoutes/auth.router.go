package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/auth"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	authValidator "github.com/venu-chandaka/online-learning-app-insightquest-internship/validators/auth"
)

// SetupAuthRoutes registers student and mentor authentication routes
func SetupAuthRoutes(app *fiber.App) {
	studentGroup := app.Group("/auth/student")
	studentGroup.Post("/signup", authValidator.Signup(), authController.StudentSignup)
	studentGroup.Post("/login", authValidator.Login(), authController.StudentLogin)
	studentGroup.Post("/send-verify-otp", middleware.StudentAuth, authController.SendVerifyOtp)
	studentGroup.Post("/verify-otp", middleware.StudentAuth, authValidator.Otp(), authController.VerifyOtp)
	studentGroup.Post("/send-reset-otp", authValidator.SendResetOtp(), authController.SendResetOtp)
	studentGroup.Post("/reset-password", authValidator.ResetPassword(), authController.ResetPassword)

	mentorGroup := app.Group("/auth/mentor")
	mentorGroup.Post("/signup", authValidator.MentorSignup(), authController.MentorSignup)
	mentorGroup.Post("/login", authValidator.Login(), authController.MentorLogin)
	mentorGroup.Post("/verify-otp", middleware.MentorAuth, authValidator.Otp(), authController.MentorVerifyOtp)
	mentorGroup.Post("/send-reset-otp", authValidator.SendResetOtp(), authController.MentorSendResetOtp)
	mentorGroup.Post("/reset-password", authValidator.ResetPassword(), authController.MentorResetPassword)
}
