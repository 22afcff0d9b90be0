package routes

import (
	"Backend-Flourish-Campus/src/controllers"
	"Backend-Flourish-Campus/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/refresh/logout)
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.Login) // 🔐 login
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
