package mentorRoutes

import (
	"github.com/gofiber/fiber/v2"

	mentorController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/mentor"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	mentorValidator "github.com/venu-chandaka/online-learning-app-insightquest-internship/validators/mentor"
)

// SetupMentorRoutes registers the mentor dashboard routes
func SetupMentorRoutes(app *fiber.App, mc *mentorController.MentorController) {
	mentorGroup := app.Group("/mentor")
	mentorGroup.Get("/get-data", middleware.MentorAuth, mc.GetMentorData)
	mentorGroup.Put("/update-profile", middleware.MentorAuth, mentorValidator.UpdateProfile(), mc.UpdateMentorProfile)
	mentorGroup.Get("/students", middleware.MentorAuth, mc.GetMentorStudents)
}
