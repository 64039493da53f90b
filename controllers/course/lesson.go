package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/utils"
)

// AddLessonRequest is the mentor's lesson creation payload
type AddLessonRequest struct {
	CourseID    uint   `json:"courseId"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl"`
}

// AddLesson appends a lesson to a course owned by the requesting mentor
func AddLesson(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*AddLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != mentorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only add lessons to your own courses!", nil)
	}

	// New lessons go to the end of the course ordering
	var lessonCount int64
	db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).
		Count(&lessonCount)

	lesson := courseModels.Lesson{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		ContentURL:  reqData.ContentURL,
		OrderIndex:  int(lessonCount),
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add lesson!", nil)
	}

	if lesson.ContentType == courseModels.ContentTypeVideo {
		go utils.ProbeContentURL(lesson.ID, lesson.ContentURL)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// GetLessonsByCourse lists a course's lessons in their defined order
func GetLessonsByCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").
		Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
