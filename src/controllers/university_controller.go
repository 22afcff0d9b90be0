package controllers

import (
	"Backend-Flourish-Campus/src/models"
	"Backend-Flourish-Campus/src/services/universities"
	"Backend-Flourish-Campus/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateUniversity godoc
// @Summary Create a university (tenant)
// @Tags universities
// @Accept json
// @Produce json
// @Param university body models.University true "University to create"
// @Success 201 {object} models.University
// @Failure 400 {object} models.ErrorResponse
// @Router /universities [post]
func CreateUniversity(c *fiber.Ctx) error {
	var uni models.University
	if err := c.BodyParser(&uni); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&uni); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := universities.CreateUniversity(&uni); err != nil {
		if err == universities.ErrSlugTaken {
			return utils.HandleError(c, fiber.StatusConflict, "Slug already in use")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating university")
	}

	return c.Status(fiber.StatusCreated).JSON(uni)
}

// GetUniversities godoc
// @Summary Get universities
// @Tags universities
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Success 200 {object} models.PaginatedResponse
// @Router /universities [get]
func GetUniversities(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := universities.GetUniversities(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching universities")
	}

	return c.JSON(result)
}

// GetUniversityBySlug godoc
// @Summary Get university by slug (public — survey bootstrap)
// @Tags universities
// @Produce json
// @Param slug path string true "University slug"
// @Success 200 {object} models.University
// @Failure 404 {object} models.ErrorResponse
// @Router /universities/slug/{slug} [get]
func GetUniversityBySlug(c *fiber.Ctx) error {
	uni, err := universities.GetUniversityBySlug(c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "University not found")
	}

	// public endpoint — ส่งเฉพาะที่หน้า survey ต้องใช้
	return c.JSON(fiber.Map{
		"name":         uni.Name,
		"slug":         uni.Slug,
		"isActive":     uni.IsActive,
		"surveyActive": uni.SurveyActive,
	})
}

// UpdateUniversity godoc
// @Summary Update university name/admin email
// @Tags universities
// @Param id path string true "University ID"
// @Router /universities/{id} [put]
func UpdateUniversity(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Name       string `json:"name" validate:"required"`
		AdminEmail string `json:"adminEmail" validate:"required,email"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := universities.UpdateUniversity(c.Params("id"), req.Name, req.AdminEmail); err != nil {
		if err == universities.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "University not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating university")
	}

	return c.JSON(fiber.Map{"message": "University updated successfully"})
}

// SetUniversityActive godoc
// @Summary Activate/deactivate a tenant
// @Tags universities
// @Param id path string true "University ID"
// @Router /universities/{id}/active [patch]
func SetUniversityActive(c *fiber.Ctx) error {
	return setUniversityFlag(c, universities.SetActive)
}

// SetSurveyActive godoc
// @Summary Open/close the survey for a tenant
// @Tags universities
// @Param id path string true "University ID"
// @Router /universities/{id}/survey-active [patch]
func SetSurveyActive(c *fiber.Ctx) error {
	return setUniversityFlag(c, universities.SetSurveyActive)
}

func setUniversityFlag(c *fiber.Ctx, set func(id string, active bool) error) error {
	type FlagRequest struct {
		Active bool `json:"active"`
	}

	var req FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := set(c.Params("id"), req.Active); err != nil {
		if err == universities.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "University not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating university")
	}

	return c.JSON(fiber.Map{"message": "University updated successfully"})
}

// DeleteUniversity godoc
// @Summary Delete a tenant
// @Tags universities
// @Param id path string true "University ID"
// @Router /universities/{id} [delete]
func DeleteUniversity(c *fiber.Ctx) error {
	if err := universities.DeleteUniversity(c.Params("id")); err != nil {
		if err == universities.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "University not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting university")
	}

	return c.JSON(fiber.Map{"message": "University deleted successfully"})
}
