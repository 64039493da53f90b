package courseController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/catalog"
)

// CreateQuizRequest is the mentor's create-or-replace quiz payload
type CreateQuizRequest struct {
	CourseID     uint                    `json:"courseId" validate:"required"`
	Questions    []catalog.QuestionInput `json:"questions" validate:"required,min=1,dive"`
	PassingMarks int                     `json:"passingMarks" validate:"gte=0"`
}

// CreateQuiz creates the course's quiz or replaces the existing one
func CreateQuiz(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != mentorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only create quizzes for your own courses!", nil)
	}

	quiz, err := catalog.NewQuizStore(db).UpsertQuiz(reqData.CourseID, reqData.Questions, reqData.PassingMarks)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz saved successfully!", quiz)
}

// GetQuiz fetches a course's quiz. Correct answers are stripped unless
// the requester is the owning mentor.
func GetQuiz(c *fiber.Ctx) error {
	accountID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	quiz, err := catalog.NewQuizStore(db).GetQuizByCourse(courseID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	isOwner := false
	if role == middleware.RoleMentor {
		var course courseModels.Course
		if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
			isOwner = course.InstructorID == accountID
		}
	}

	if !isOwner {
		for i := range quiz.Questions {
			quiz.Questions[i].CorrectAnswer = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}
