package routes

import (
	"Backend-Flourish-Campus/src/controllers"
	"Backend-Flourish-Campus/src/middleware"
	"Backend-Flourish-Campus/src/models"

	"github.com/gofiber/fiber/v2"
)

// universityRoutes กำหนดเส้นทางสำหรับ University API
// GET by slug เปิด public ให้หน้า survey ใช้เช็คสถานะ ที่เหลือเป็นของ super admin
func universityRoutes(router fiber.Router) {
	universityRoutes := router.Group("/universities")

	universityRoutes.Get("/slug/:slug", controllers.GetUniversityBySlug) // หน้า survey ใช้เช็คว่า survey เปิดอยู่ไหม

	admin := universityRoutes.Group("/", middleware.AuthJWT, middleware.RequireRole(models.RoleSuperAdmin))
	admin.Get("/", controllers.GetUniversities)     // ดึง tenant ทั้งหมด
	admin.Post("/", controllers.CreateUniversity)   // สร้าง tenant ใหม่
	admin.Put("/:id", controllers.UpdateUniversity) // อัปเดตข้อมูล tenant
	admin.Patch("/:id/active", controllers.SetUniversityActive)
	admin.Patch("/:id/survey-active", controllers.SetSurveyActive)
	admin.Delete("/:id", controllers.DeleteUniversity) // ลบ tenant
}
