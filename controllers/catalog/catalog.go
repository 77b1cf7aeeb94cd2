package catalogController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

func BrandList(c *fiber.Ctx) error {
	var brands []models.Brand
	if err := database.Database.Db.Order("name ASC").Find(&brands).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch brands!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Brands fetched successfully!", brands)
}

func CreateBrand(c *fiber.Ctx) error {
	reqData := new(models.Brand)
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Brand name is required!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create brand!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Brand created successfully!", models.CreateResult{ID: reqData.ID})
}

func CreateValveModel(c *fiber.Ctx) error {
	brandId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData := new(models.ValveModel)
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Model name is required!", nil)
	}
	reqData.BrandID = uint(brandId)

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create model!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model created successfully!", models.CreateResult{ID: reqData.ID})
}

func GetValveModel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var model models.ValveModel
	if err := database.Database.Db.First(&model, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Model not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model fetched successfully!", model)
}

func UpdateValveModel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var model models.ValveModel
	if err := database.Database.Db.First(&model, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Model not found!", nil)
	}

	reqData := new(models.ValveModel)
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Model name is required!", nil)
	}

	model.Name = reqData.Name
	if err := database.Database.Db.Save(&model).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update model!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model updated successfully!", nil)
}

func DeleteValveModel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.ValveModel{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete model!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model deleted successfully!", nil)
}
