package authController

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/utils"
)

// MentorSignupRequest carries the mentor registration payload
type MentorSignupRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Bio        string   `json:"bio"`
	Expertise  []string `json:"expertise"`
	Experience int      `json:"experience"`
}

// MentorSignup registers a new mentor account and mails a verification code
func MentorSignup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMentorSignup").(*MentorSignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.Mentor{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	expertise, err := json.Marshal(reqData.Expertise)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid expertise list!", nil)
	}

	code := utils.GenerateOTP()
	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	newMentor := models.Mentor{
		Name:              reqData.Name,
		Email:             reqData.Email,
		Password:          string(hashedPassword),
		Bio:               reqData.Bio,
		Expertise:         datatypes.JSON(expertise),
		Experience:        reqData.Experience,
		VerifyOtp:         code,
		VerifyOtpExpireAt: &expireAt,
	}

	if err := db.Create(&newMentor).Error; err != nil {
		log.Printf("Error saving mentor to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up!", nil)
	}

	recordOTP(newMentor.ID, middleware.RoleMentor, newMentor.Email, code, "VERIFY", expireAt)
	utils.SendWelcomeEmail(newMentor.Email, newMentor.Name)
	utils.SendVerifyOtpEmail(newMentor.Email, newMentor.Name, code)

	newMentor.Password = ""
	newMentor.VerifyOtp = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentor registered successfully. Check your email for the verification code.", newMentor)
}

// MentorLogin authenticates a mentor and issues a JWT
func MentorLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("email = ? AND is_deleted = ? AND is_active = ?", reqData.Email, false, true).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(mentor.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(mentor.ID, mentor.Name, middleware.RoleMentor, mentor.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token":               token,
		"name":                mentor.Name,
		"is_account_verified": mentor.IsAccountVerified,
	})
}

// MentorVerifyOtp confirms mentor account ownership with the emailed code
func MentorVerifyOtp(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedOtp").(*struct {
		Otp string `json:"otp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("id = ? AND is_deleted = ?", mentorID, false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	if mentor.VerifyOtp == "" || mentor.VerifyOtp != reqData.Otp {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
	}

	if mentor.VerifyOtpExpireAt == nil || time.Now().After(*mentor.VerifyOtpExpireAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code has expired!", nil)
	}

	if err := db.Model(&mentor).Updates(map[string]interface{}{
		"is_account_verified":  true,
		"verify_otp":           "",
		"verify_otp_expire_at": nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify account!", nil)
	}

	db.Model(&models.OTP{}).
		Where("account_id = ? AND account_role = ? AND code = ?", mentor.ID, middleware.RoleMentor, reqData.Otp).
		Update("is_used", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account verified successfully!", nil)
}

// MentorSendResetOtp mails a password-reset code to a mentor account
func MentorSendResetOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetOtp").(*SendResetOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	code := utils.GenerateOTP()
	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	if err := db.Model(&mentor).Updates(map[string]interface{}{
		"reset_otp":           code,
		"reset_otp_expire_at": &expireAt,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue reset code!", nil)
	}

	recordOTP(mentor.ID, middleware.RoleMentor, mentor.Email, code, "RESET", expireAt)
	utils.SendResetOtpEmail(mentor.Email, mentor.Name, code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reset code sent to your email.", nil)
}

// MentorResetPassword sets a new mentor password after checking the
// emailed code
func MentorResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	if mentor.ResetOtp == "" || mentor.ResetOtp != reqData.Otp {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reset code!", nil)
	}

	if mentor.ResetOtpExpireAt == nil || time.Now().After(*mentor.ResetOtpExpireAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reset code has expired!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&mentor).Updates(map[string]interface{}{
		"password":            string(hashedPassword),
		"reset_otp":           "",
		"reset_otp_expire_at": nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	db.Model(&models.OTP{}).
		Where("account_id = ? AND account_role = ? AND code = ?", mentor.ID, middleware.RoleMentor, reqData.Otp).
		Update("is_used", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password has been reset successfully!", nil)
}
