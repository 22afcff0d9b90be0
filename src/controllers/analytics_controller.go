package controllers

import (
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/services/analytics"
	"Backend-Flourish-Campus/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSurveyAnalytics godoc
// @Summary Get the aggregated survey analytics for a university
// @Description Admins can only view their own university. Pass refresh=true to bypass the cache.
// @Tags analytics
// @Produce json
// @Param slug path string true "University slug"
// @Param refresh query bool false "Bypass the analytics cache"
// @Success 200 {object} models.SurveyAnalytics
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /analytics/{slug} [get]
func GetSurveyAnalytics(c *fiber.Ctx) error {
	slug := c.Params("slug")

	// admin ดูได้เฉพาะมหาวิทยาลัยของตัวเอง
	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin {
		ownSlug, _ := c.Locals("universitySlug").(string)
		if ownSlug != slug {
			return utils.HandleError(c, fiber.StatusForbidden, "You do not have access to this university")
		}
	}

	skipCache := c.Query("refresh") == "true"

	result, err := analytics.GetSurveyAnalytics(c.Context(), slug, skipCache)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error building analytics")
	}

	return c.JSON(result)
}
