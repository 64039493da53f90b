package mentorController

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	courseModels "github.com/venu-chandaka/online-learning-app-insightquest-internship/models/course"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/services/enrollment"
)

// MentorController serves the mentor dashboard: profile data, profile
// edits and per-course student rosters.
type MentorController struct {
	DB     *gorm.DB
	Engine *enrollment.Engine
}

func NewMentorController(db *gorm.DB) *MentorController {
	return &MentorController{
		DB:     db,
		Engine: enrollment.NewEngine(db),
	}
}

// UpdateProfileRequest carries partial mentor profile edits
type UpdateProfileRequest struct {
	Name           *string  `json:"name"`
	Bio            *string  `json:"bio"`
	Expertise      []string `json:"expertise"`
	Experience     *int     `json:"experience"`
	ProfilePicture *string  `json:"profilePicture"`
}

// GetMentorData returns the mentor profile with a course summary
func (mc *MentorController) GetMentorData(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var mentor models.Mentor
	if err := mc.DB.Where("id = ? AND is_deleted = ?", mentorID, false).First(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentor data!", nil)
	}

	var courseCount int64
	mc.DB.Model(&courseModels.Course{}).
		Where("instructor_id = ? AND is_deleted = ?", mentorID, false).
		Count(&courseCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor data fetched successfully!", fiber.Map{
		"name":                mentor.Name,
		"email":               mentor.Email,
		"bio":                 mentor.Bio,
		"expertise":           mentor.Expertise,
		"experience":          mentor.Experience,
		"profile_picture":     mentor.ProfilePicture,
		"is_account_verified": mentor.IsAccountVerified,
		"course_count":        courseCount,
		"created_at":          mentor.CreatedAt,
	})
}

// UpdateMentorProfile applies partial edits to the mentor's own profile
func (mc *MentorController) UpdateMentorProfile(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var mentor models.Mentor
	if err := mc.DB.Where("id = ? AND is_deleted = ?", mentorID, false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Bio != nil {
		updates["bio"] = *reqData.Bio
	}
	if reqData.Expertise != nil {
		expertise, err := json.Marshal(reqData.Expertise)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid expertise list!", nil)
		}
		updates["expertise"] = datatypes.JSON(expertise)
	}
	if reqData.Experience != nil {
		updates["experience"] = *reqData.Experience
	}
	if reqData.ProfilePicture != nil {
		updates["profile_picture"] = *reqData.ProfilePicture
	}

	if len(updates) > 0 {
		if err := mc.DB.Model(&mentor).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	mentor.Password = ""
	mentor.VerifyOtp = ""
	mentor.ResetOtp = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", mentor)
}

// GetMentorStudents lists the enrolled students of each of the
// mentor's courses
func (mc *MentorController) GetMentorStudents(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := mc.DB.Where("instructor_id = ? AND is_deleted = ?", mentorID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	rosters := []fiber.Map{}
	for _, course := range courses {
		students, err := mc.Engine.EnrolledStudents(course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
		}

		entries := make([]fiber.Map, 0, len(students))
		for _, s := range students {
			entries = append(entries, fiber.Map{
				"id":    s.ID,
				"name":  s.Name,
				"email": s.Email,
			})
		}
		rosters = append(rosters, fiber.Map{
			"courseId":    course.ID,
			"courseTitle": course.Title,
			"students":    entries,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"courses": rosters,
	})
}
