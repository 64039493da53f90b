package studentController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/enrollment"
)

// StudentController exposes the enrollment engine over HTTP. The
// authenticated student id is read from the token and passed to every
// engine call explicitly.
type StudentController struct {
	DB     *gorm.DB
	Engine *enrollment.Engine
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:     db,
		Engine: enrollment.NewEngine(db),
	}
}

// EnrollRequest carries the course to enroll into
type EnrollRequest struct {
	CourseID uint `json:"courseId"`
}

// CompleteLessonRequest marks one lesson of a course as done
type CompleteLessonRequest struct {
	CourseID uint `json:"courseId"`
	LessonID uint `json:"lessonId"`
}

// SubmitQuizRequest carries answers aligned to quiz question order
type SubmitQuizRequest struct {
	CourseID uint     `json:"courseId"`
	Answers  []string `json:"answers"`
}

// GetStudentData returns the student profile with enrollment progress
func (sc *StudentController) GetStudentData(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var student models.Student
	if err := sc.DB.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student data!", nil)
	}

	enrolled, err := sc.Engine.GetEnrollments(studentID)
	if err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student data fetched successfully!", fiber.Map{
		"name":                student.Name,
		"email":               student.Email,
		"profile_picture":     student.ProfilePicture,
		"is_account_verified": student.IsAccountVerified,
		"enrolled_courses":    enrolled,
		"created_at":          student.CreatedAt,
	})
}

// Enroll registers the student into a course
func (sc *StudentController) Enroll(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := sc.Engine.Enroll(studentID, reqData.CourseID); err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully", nil)
}

// CompleteLesson marks a lesson done and returns the updated progress
func (sc *StudentController) CompleteLesson(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCompleteLesson").(*CompleteLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, err := sc.Engine.MarkLessonComplete(studentID, reqData.CourseID, reqData.LessonID)
	if err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed", fiber.Map{
		"progress": progress,
	})
}

// GetCompletedLessons lists lesson ids the student finished in a course
func (sc *StudentController) GetCompletedLessons(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	lessonIDs, err := sc.Engine.GetCompletedLessons(studentID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed lessons fetched successfully!", fiber.Map{
		"completedLessonIds": lessonIDs,
	})
}

// GetEnrolledCourses lists the student's courses with progress
func (sc *StudentController) GetEnrolledCourses(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrolled, err := sc.Engine.GetEnrollments(studentID)
	if err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"enrolledCourses": enrolled,
	})
}

// SubmitQuiz scores the student's answers for the course quiz
func (sc *StudentController) SubmitQuiz(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmitQuiz").(*SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	outcome, err := sc.Engine.SubmitQuiz(studentID, reqData.CourseID, reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, enrollment.HTTPStatus(err), false, err.Error(), nil)
	}

	message := "Failed. Better luck next time!"
	if outcome.Passed {
		message = "Passed!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, outcome)
}
