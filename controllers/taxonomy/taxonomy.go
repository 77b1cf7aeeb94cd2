package taxonomyController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/taxonomy"

	"github.com/gofiber/fiber/v2"
)

// GetTaxonomy serves the full field→values map. Every known field is present
// in the response, empty or not, so pickers always have a key to bind to.
func GetTaxonomy(c *fiber.Ctx) error {
	var rows []models.TaxonomyValue
	if err := database.Database.Db.Order("field ASC, created_at ASC").Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch taxonomy!", nil)
	}

	sets := make(map[string][]string, len(taxonomy.Fields))
	for _, field := range taxonomy.Fields {
		sets[field] = []string{}
	}
	for _, row := range rows {
		sets[row.Field] = append(sets[row.Field], row.Value)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Taxonomy fetched successfully!", sets)
}

// PostTaxonomyValue appends one value to a field's shared set. Duplicates are
// accepted and ignored so repeated publishes stay idempotent.
func PostTaxonomyValue(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTaxonomyValue").(*models.TaxonomyValue)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.TaxonomyValue
	if err := database.Database.Db.Where("field = ? AND value = ?", reqData.Field, reqData.Value).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Value already present!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store taxonomy value!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Taxonomy value stored successfully!", nil)
}
