package routes

import (
	"Backend-Flourish-Campus/src/controllers"
	"Backend-Flourish-Campus/src/middleware"
	"Backend-Flourish-Campus/src/models"

	"github.com/gofiber/fiber/v2"
)

// analyticsRoutes dashboard ของ admin — ต้อง login เสมอ
func analyticsRoutes(router fiber.Router) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Use(middleware.AuthJWT, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

	analyticsRoutes.Get("/:slug", controllers.GetSurveyAnalytics)
}
