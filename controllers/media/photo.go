package mediaController

import (
	"path/filepath"
	"strconv"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadPhoto attaches an uploaded image to a report's before or after set.
// Originals are stored as-is under the upload directory.
func UploadPhoto(c *fiber.Ctx) error {
	reportId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var report models.Report
	if err := database.Database.Db.First(&report, reportId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	set := c.FormValue("set", "before")
	if set != "before" && set != "after" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Photo set must be before or after!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Photo file is required!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, strconv.Itoa(reportId), set)
	stored, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store photo!", nil)
	}

	photo := models.ReportPhoto{
		ReportID: uint(reportId),
		Set:      set,
		Path:     strconv.Itoa(reportId) + "/" + set + "/" + stored,
		Caption:  c.FormValue("caption"),
	}
	if err := database.Database.Db.Create(&photo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record photo!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photo uploaded successfully!", fiber.Map{
		"id":  photo.ID,
		"url": utils.GetFileURL(photo.Path),
	})
}

// PhotoList returns a report's photos, optionally filtered by set.
func PhotoList(c *fiber.Ctx) error {
	reportId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	db := database.Database.Db.Where("report_id = ?", reportId)
	if set := c.Query("set"); set != "" {
		db = db.Where("\"set\" = ?", set)
	}

	var photos []models.ReportPhoto
	if err := db.Order("created_at ASC").Find(&photos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch photos!", nil)
	}

	items := make([]fiber.Map, 0, len(photos))
	for _, photo := range photos {
		items = append(items, fiber.Map{
			"id":      photo.ID,
			"set":     photo.Set,
			"caption": photo.Caption,
			"url":     utils.GetFileURL(photo.Path),
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photos fetched successfully!", items)
}

// DeletePhoto removes a photo record. The stored file is left for the
// retention cleanup.
func DeletePhoto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("photoId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.ReportPhoto{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete photo!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photo deleted successfully!", nil)
}
