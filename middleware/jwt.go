package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
)

// Principal roles carried in the token
const (
	RoleStudent = "STUDENT"
	RoleMentor  = "MENTOR"
)

// GenerateJWT generates a JWT token for a student or mentor account
func GenerateJWT(accountID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"accountId": accountID,
		"name":      name,
		"role":      role,
		"email":     email,
		"jti":       uuid.NewString(),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// StudentAuth requires a valid student token on the request
func StudentAuth(c *fiber.Ctx) error {
	return requireRole(c, RoleStudent)
}

// MentorAuth requires a valid mentor token on the request
func MentorAuth(c *fiber.Ctx) error {
	return requireRole(c, RoleMentor)
}

// AnyAuth accepts either account type; handlers branch on the role local
func AnyAuth(c *fiber.Ctx) error {
	return requireRole(c, "")
}

// requireRole checks the bearer token and stashes the authenticated
// principal id and role into the request context
func requireRole(c *fiber.Ctx, role string) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["accountId"] == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	tokenRole, _ := claims["role"].(string)
	if role != "" && tokenRole != role {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access denied for this account type",
		})
	}

	// JWT numeric claims decode as float64
	accountID := claims["accountId"].(float64)
	c.Locals("accountId", uint(accountID))
	c.Locals("role", tokenRole)

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
