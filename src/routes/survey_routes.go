package routes

import (
	"Backend-Flourish-Campus/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// surveyRoutes เส้นทางของ respondent ทั้งหมด — ไม่ต้อง login (anonymous survey)
func surveyRoutes(router fiber.Router) {
	surveyRoutes := router.Group("/surveys")

	surveyRoutes.Post("/sessions", controllers.StartSession)
	surveyRoutes.Put("/sessions/:id/demographics", controllers.SaveDemographics)
	surveyRoutes.Put("/sessions/:id/flourishing", controllers.SaveFlourishing)
	surveyRoutes.Put("/sessions/:id/wellbeing", controllers.SaveSchoolWellbeing)
	surveyRoutes.Put("/sessions/:id/text", controllers.SaveTextResponse)
	surveyRoutes.Put("/sessions/:id/tensions", controllers.SaveTensions)
	surveyRoutes.Put("/sessions/:id/enabler-barriers", controllers.SaveEnablerBarrier)
	surveyRoutes.Post("/sessions/:id/complete", controllers.CompleteSession)
}
