package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/middleware"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/models"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/utils"
)

// SignupRequest is the shared registration payload
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the shared login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SendResetOtpRequest identifies the account to send a reset code to
type SendResetOtpRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest carries the emailed code and the new password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// StudentSignup registers a new student account and mails a
// verification code
func StudentSignup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	code := utils.GenerateOTP()
	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	newStudent := models.Student{
		Name:              reqData.Name,
		Email:             reqData.Email,
		Password:          string(hashedPassword),
		VerifyOtp:         code,
		VerifyOtpExpireAt: &expireAt,
	}

	if err := db.Create(&newStudent).Error; err != nil {
		log.Printf("Error saving student to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up!", nil)
	}

	recordOTP(newStudent.ID, middleware.RoleStudent, newStudent.Email, code, "VERIFY", expireAt)
	utils.SendWelcomeEmail(newStudent.Email, newStudent.Name)
	utils.SendVerifyOtpEmail(newStudent.Email, newStudent.Name, code)

	newStudent.Password = ""
	newStudent.VerifyOtp = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registered successfully. Check your email for the verification code.", newStudent)
}

// StudentLogin authenticates a student and issues a JWT
func StudentLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(student.ID, student.Name, middleware.RoleStudent, student.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token":               token,
		"name":                student.Name,
		"is_account_verified": student.IsAccountVerified,
	})
}

// SendVerifyOtp issues a fresh verification code to the logged-in student
func SendVerifyOtp(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if student.IsAccountVerified {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Account is already verified!", nil)
	}

	code := utils.GenerateOTP()
	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	if err := db.Model(&student).Updates(map[string]interface{}{
		"verify_otp":           code,
		"verify_otp_expire_at": &expireAt,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue verification code!", nil)
	}

	recordOTP(student.ID, middleware.RoleStudent, student.Email, code, "VERIFY", expireAt)
	utils.SendVerifyOtpEmail(student.Email, student.Name, code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification code sent to your email.", nil)
}

// VerifyOtp confirms account ownership with the emailed code
func VerifyOtp(c *fiber.Ctx) error {
	studentID, ok := c.Locals("accountId").(uint)
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

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if student.VerifyOtp == "" || student.VerifyOtp != reqData.Otp {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
	}

	if student.VerifyOtpExpireAt == nil || time.Now().After(*student.VerifyOtpExpireAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code has expired!", nil)
	}

	if err := db.Model(&student).Updates(map[string]interface{}{
		"is_account_verified":  true,
		"verify_otp":           "",
		"verify_otp_expire_at": nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify account!", nil)
	}

	db.Model(&models.OTP{}).
		Where("account_id = ? AND account_role = ? AND code = ?", student.ID, middleware.RoleStudent, reqData.Otp).
		Update("is_used", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account verified successfully!", nil)
}

// SendResetOtp mails a password-reset code. Unauthenticated; the
// student proves ownership with the code itself.
func SendResetOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetOtp").(*SendResetOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	code := utils.GenerateOTP()
	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	if err := db.Model(&student).Updates(map[string]interface{}{
		"reset_otp":           code,
		"reset_otp_expire_at": &expireAt,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue reset code!", nil)
	}

	recordOTP(student.ID, middleware.RoleStudent, student.Email, code, "RESET", expireAt)
	utils.SendResetOtpEmail(student.Email, student.Name, code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reset code sent to your email.", nil)
}

// ResetPassword sets a new password after checking the emailed code
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if student.ResetOtp == "" || student.ResetOtp != reqData.Otp {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reset code!", nil)
	}

	if student.ResetOtpExpireAt == nil || time.Now().After(*student.ResetOtpExpireAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reset code has expired!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&student).Updates(map[string]interface{}{
		"password":            string(hashedPassword),
		"reset_otp":           "",
		"reset_otp_expire_at": nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	db.Model(&models.OTP{}).
		Where("account_id = ? AND account_role = ? AND code = ?", student.ID, middleware.RoleStudent, reqData.Otp).
		Update("is_used", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password has been reset successfully!", nil)
}

// recordOTP keeps an audit row for every code issued; the cleanup
// scheduler reaps these
func recordOTP(accountID uint, role, email, code, purpose string, expiresAt time.Time) {
	otp := models.OTP{
		AccountID:   accountID,
		AccountRole: role,
		Email:       email,
		Code:        code,
		Purpose:     purpose,
		ExpiresAt:   expiresAt,
	}
	if err := database.Database.Db.Create(&otp).Error; err != nil {
		log.Printf("Error recording OTP: %v", err)
	}
}
