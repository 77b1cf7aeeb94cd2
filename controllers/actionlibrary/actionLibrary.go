package actionLibraryController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

func LibraryList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.ActionLibraryItem{})

	if scope := c.Query("scope"); scope != "" {
		db = db.Where("scope = ?", scope)
	}
	if valveType := c.Query("valve_type"); valveType != "" {
		db = db.Where("valve_type = ? OR valve_type = ''", valveType)
	}
	if !c.QueryBool("include_inactive") {
		db = db.Where("is_active = ?", true)
	}

	var items []models.ActionLibraryItem
	if err := db.Order("scope ASC, order_index ASC").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch action library!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Action library fetched successfully!", items)
}

// Catalog serves the reduced entry shape the report wizard consumes: active
// entries matching the valve type plus the unscoped ones.
func Catalog(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.ActionLibraryItem{}).Where("is_active = ?", true)
	if valveType := c.Query("valve_type"); valveType != "" {
		db = db.Where("valve_type = ? OR valve_type = ''", valveType)
	}

	var items []models.ActionLibraryItem
	if err := db.Order("scope ASC, order_index ASC").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch catalog!", nil)
	}

	entries := make([]models.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.CatalogEntry{
			ID:        item.ID,
			Scope:     item.Scope,
			ValveType: item.ValveType,
			TextTr:    item.TextTr,
			TextEn:    item.TextEn,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Catalog fetched successfully!", entries)
}

func CreateLibraryItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLibraryItem").(*models.ActionLibraryItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create library item!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library item created successfully!", models.CreateResult{ID: reqData.ID})
}

func UpdateLibraryItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedLibraryItem").(*models.ActionLibraryItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var item models.ActionLibraryItem
	if err := database.Database.Db.First(&item, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Library item not found!", nil)
	}

	reqData.ID = item.ID
	reqData.CreatedAt = item.CreatedAt
	if err := database.Database.Db.Save(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update library item!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library item updated successfully!", nil)
}

// ReorderLibrary applies new order indexes to a batch of entries.
func ReorderLibrary(c *fiber.Ctx) error {
	var items []struct {
		ID         uint `json:"id"`
		OrderIndex int  `json:"order_index"`
	}
	if err := c.BodyParser(&items); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	for _, item := range items {
		if item.ID == 0 {
			continue
		}
		if err := db.Model(&models.ActionLibraryItem{}).
			Where("id = ?", item.ID).Update("order_index", item.OrderIndex).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder library!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library reordered successfully!", nil)
}

// DeleteLibraryItem deactivates an entry. Reports keep the texts they
// snapshotted at selection time, so nothing already issued changes.
func DeleteLibraryItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	result := database.Database.Db.Model(&models.ActionLibraryItem{}).
		Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete library item!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Library item deactivated successfully!", nil)
}
