package controllers

import (
	"fmt"
	"time"

	"Backend-Flourish-Campus/src/services/auth"
	"Backend-Flourish-Campus/src/utils"

	"github.com/gofiber/fiber/v2"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// Login - สำหรับ admin และ superadmin
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// 1. Input validation
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	// 2. Rate limiting
	if auth.IsRateLimited(req.Email) {
		remainingTime := auth.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	// 3. Authenticate admin
	admin, err := auth.AuthenticateAdmin(req.Email, req.Password)
	if err != nil {
		auth.LogLoginAttempt(req.Email, c.IP(), false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	// 4. Generate tokens
	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, admin.UniversitySlug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(admin.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	auth.LogLoginAttempt(req.Email, c.IP(), true)

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    3600,
		"user": fiber.Map{
			"id":             admin.ID.Hex(),
			"name":           admin.Name,
			"email":          admin.Email,
			"role":           admin.Role,
			"universitySlug": admin.UniversitySlug,
			"lastLogin":      time.Now(),
		},
		"message": "Login successful",
	})
}

// RefreshToken - ออก access token ใหม่จาก refresh token
// @Summary Refresh access token
// @Tags auth
// @Router /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	// role/slug เอาจาก DB ไม่ใช่จาก request
	admin, err := auth.GetAdminByID(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, admin.UniversitySlug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	return c.JSON(fiber.Map{"token": token, "expiresIn": 3600})
}

// Logout - ลบ refresh token ทิ้ง
// @Summary Logout
// @Tags auth
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID != "" {
		_ = utils.DeleteRefreshToken(userID)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
