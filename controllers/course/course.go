package courseController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/enrollment"
)

// CreateCourseRequest is the mentor's course creation payload
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
}

// UpdateCourseRequest carries partial course edits
type UpdateCourseRequest struct {
	CourseID    uint    `json:"courseId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *string `json:"level"`
	Thumbnail   *string `json:"thumbnail"`
}

// CreateCourse lets a verified mentor author a new course
func CreateCourse(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ? AND is_deleted = ?", mentorID, false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Mentor not found!", nil)
	}

	if !mentor.IsAccountVerified {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account not verified. You cannot create a course.", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newCourse := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		InstructorID: mentorID,
	}
	if reqData.Level != "" {
		newCourse.Level = reqData.Level
	}

	if err := db.Create(&newCourse).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", newCourse)
}

// UpdateCourse edits a course owned by the requesting mentor
func UpdateCourse(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != mentorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own courses!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail_url"] = *reqData.Thumbnail
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// TogglePublish flips a course's published flag
func TogglePublish(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != mentorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only publish your own courses!", nil)
	}

	if err := db.Model(&course).Update("is_published", !course.IsPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	message := "Course unpublished successfully"
	if !course.IsPublished {
		message = "Course published successfully"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// GetAllCourses lists every published course
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_published = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetMentorCourses lists the requesting mentor's own courses
func GetMentorCourses(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("instructor_id = ? AND is_deleted = ?", mentorID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No courses uploaded yet", []courseModels.Course{})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a course with its lessons. Access: the
// owning mentor, or a student enrolled in the course.
func GetCourseDetails(c *fiber.Ctx) error {
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

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	allowed := false
	switch role {
	case middleware.RoleMentor:
		allowed = course.InstructorID == accountID
	case middleware.RoleStudent:
		enrolled, err := enrollment.NewEngine(db).IsEnrolled(accountID, courseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
		}
		allowed = enrolled
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Not enrolled or creator.", nil)
	}

	var lessons []courseModels.Lesson
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").
		Find(&lessons)

	var instructor models.Mentor
	db.Select("id", "name", "email", "bio").Where("id = ?", course.InstructorID).First(&instructor)
	instructor.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"lessons":    lessons,
		"instructor": instructor,
	})
}
