package controllers

import (
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/services/surveys"
	"Backend-Flourish-Campus/src/utils"

	"github.com/gofiber/fiber/v2"
)

// StartSession godoc
// @Summary Start (or resume) a survey session
// @Tags surveys
// @Accept json
// @Produce json
// @Success 201 {object} models.SurveySession
// @Failure 403 {object} models.ErrorResponse
// @Router /surveys/sessions [post]
func StartSession(c *fiber.Ctx) error {
	type StartRequest struct {
		UniversitySlug  string `json:"universitySlug"`
		SessionID       string `json:"sessionId"`
		EmailForResults string `json:"emailForResults"`
	}

	var req StartRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if req.UniversitySlug == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "universitySlug is required")
	}

	session, err := surveys.StartSession(req.UniversitySlug, req.SessionID, req.EmailForResults)
	if err != nil {
		if err == surveys.ErrSurveyClosed {
			return utils.HandleError(c, fiber.StatusForbidden, "Survey is not open for this university")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error starting session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// SaveDemographics godoc
// @Summary Save the demographics section
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/demographics [put]
func SaveDemographics(c *fiber.Ctx) error {
	var d models.Demographics
	if err := c.BodyParser(&d); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveDemographics(c.Params("id"), &d))
}

// SaveFlourishing godoc
// @Summary Save the flourishing scores section
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/flourishing [put]
func SaveFlourishing(c *fiber.Ctx) error {
	var f models.FlourishingScore
	if err := c.BodyParser(&f); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveFlourishing(c.Params("id"), &f))
}

// SaveSchoolWellbeing godoc
// @Summary Save the school wellbeing section (v1 or v2)
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/wellbeing [put]
func SaveSchoolWellbeing(c *fiber.Ctx) error {
	var w models.SchoolWellbeing
	if err := c.BodyParser(&w); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveSchoolWellbeing(c.Params("id"), &w))
}

// SaveTextResponse godoc
// @Summary Save the fastest-win free text section
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/text [put]
func SaveTextResponse(c *fiber.Ctx) error {
	var t models.TextResponse
	if err := c.BodyParser(&t); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveTextResponse(c.Params("id"), &t))
}

// SaveTensions godoc
// @Summary Save the tension sliders section
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/tensions [put]
func SaveTensions(c *fiber.Ctx) error {
	var t models.TensionAssessment
	if err := c.BodyParser(&t); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveTensions(c.Params("id"), &t))
}

// SaveEnablerBarrier godoc
// @Summary Save enabler/barrier selections for one domain
// @Tags surveys
// @Param id path string true "Session ID"
// @Router /surveys/sessions/{id}/enabler-barriers [put]
func SaveEnablerBarrier(c *fiber.Ctx) error {
	var sel models.EnablerBarrierSelection
	if err := c.BodyParser(&sel); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	return handleSave(c, surveys.SaveEnablerBarrier(c.Params("id"), &sel))
}

// CompleteSession godoc
// @Summary Mark a session completed (idempotent)
// @Tags surveys
// @Param id path string true "Session ID"
// @Success 200 {object} models.SurveySession
// @Router /surveys/sessions/{id}/complete [post]
func CompleteSession(c *fiber.Ctx) error {
	type CompleteRequest struct {
		EmailForResults string `json:"emailForResults"`
	}

	var req CompleteRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	session, err := surveys.CompleteSession(c.Params("id"), req.EmailForResults)
	if err != nil {
		if err == surveys.ErrSessionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error completing session")
	}

	return c.JSON(session)
}

func handleSave(c *fiber.Ctx, err error) error {
	if err != nil {
		if err == surveys.ErrSessionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Saved successfully"})
}
