package settingsController

import (
	"path/filepath"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
)

func ProfileList(c *fiber.Ctx) error {
	var profiles []models.CompanyProfile
	if err := database.Database.Db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch company profiles!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company profiles fetched successfully!", profiles)
}

func CreateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfile").(*models.CompanyProfile)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Only one profile may be the default
	if reqData.IsDefault {
		database.Database.Db.Model(&models.CompanyProfile{}).
			Where("is_default = ?", true).Update("is_default", false)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company profile!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company profile created successfully!", models.CreateResult{ID: reqData.ID})
}

func UpdateProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*models.CompanyProfile)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var profile models.CompanyProfile
	if err := database.Database.Db.First(&profile, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company profile not found!", nil)
	}

	if reqData.IsDefault && !profile.IsDefault {
		database.Database.Db.Model(&models.CompanyProfile{}).
			Where("is_default = ?", true).Update("is_default", false)
	}

	reqData.ID = profile.ID
	reqData.CreatedAt = profile.CreatedAt
	reqData.LogoObjectKey = profile.LogoObjectKey
	if err := database.Database.Db.Save(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company profile!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company profile updated successfully!", nil)
}

func DeleteProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.CompanyProfile{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company profile!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company profile deleted successfully!", nil)
}

// UploadLogo stores a profile logo under the upload directory and records its
// object key on the profile.
func UploadLogo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var profile models.CompanyProfile
	if err := database.Database.Db.First(&profile, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company profile not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Logo file is required!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "logos")
	stored, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store logo!", nil)
	}

	profile.LogoObjectKey = "logos/" + stored
	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logo uploaded successfully!", fiber.Map{
		"logo_object_key": profile.LogoObjectKey,
	})
}
