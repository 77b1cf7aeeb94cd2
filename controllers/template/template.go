package templateController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

func TemplateList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Template{})
	if templateType := c.Query("template_type"); templateType != "" {
		db = db.Where("type = ?", templateType)
	}

	var templates []models.Template
	if err := db.Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Templates fetched successfully!", templates)
}

func CreateTemplate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTemplate").(*models.Template)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create template!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template created successfully!", models.CreateResult{ID: reqData.ID})
}

func UpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedTemplate").(*models.Template)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var template models.Template
	if err := database.Database.Db.First(&template, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	reqData.ID = template.ID
	reqData.CreatedAt = template.CreatedAt
	if err := database.Database.Db.Save(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update template!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template updated successfully!", nil)
}

func DeleteTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Template{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete template!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template deleted successfully!", nil)
}
