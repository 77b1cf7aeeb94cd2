package productController

import (
	"encoding/json"
	"log"

	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/taxonomy"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// toModel copies a validated payload onto a persistable product row.
func toModel(payload *models.ProductPayload, product *models.Product) {
	product.CustomerID = payload.CustomerID
	product.BrandID = payload.BrandID
	product.ModelID = payload.ModelID
	product.Type = payload.Type
	product.SerialNo = payload.SerialNo
	product.TagNo = payload.TagNo
	product.DnPn = payload.DnPn
	product.Notes = payload.Notes

	product.ValveType = payload.ValveType
	product.Manufacturer = payload.Manufacturer
	product.Size = payload.Size
	product.PressureClass = payload.PressureClass
	product.ConnectionType = payload.ConnectionType
	product.BodyStyle = payload.BodyStyle
	product.FailAction = payload.FailAction
	product.BodyMaterial = payload.BodyMaterial
	product.TrimMaterial = payload.TrimMaterial
	product.SeatMaterial = payload.SeatMaterial
	product.StemMaterial = payload.StemMaterial

	if payload.Actuator != nil {
		raw, _ := json.Marshal(payload.Actuator)
		product.Actuator = datatypes.JSON(raw)
	}
	if payload.Accessories != nil {
		raw, _ := json.Marshal(payload.Accessories)
		product.Accessories = datatypes.JSON(raw)
	}
	if payload.TechnicalCard != nil {
		raw, _ := json.Marshal(payload.TechnicalCard)
		product.TechnicalCard = datatypes.JSON(raw)
	}
}

// toPayload rebuilds the structured product shape served to editors.
func toPayload(product *models.Product) models.ProductPayload {
	payload := models.ProductPayload{
		ID:         product.ID,
		CustomerID: product.CustomerID,
		BrandID:    product.BrandID,
		ModelID:    product.ModelID,
		Type:       product.Type,
		SerialNo:   product.SerialNo,
		TagNo:      product.TagNo,
		DnPn:       product.DnPn,
		Notes:      product.Notes,

		ValveType:      product.ValveType,
		Manufacturer:   product.Manufacturer,
		Size:           product.Size,
		PressureClass:  product.PressureClass,
		ConnectionType: product.ConnectionType,
		BodyStyle:      product.BodyStyle,
		FailAction:     product.FailAction,
		BodyMaterial:   product.BodyMaterial,
		TrimMaterial:   product.TrimMaterial,
		SeatMaterial:   product.SeatMaterial,
		StemMaterial:   product.StemMaterial,
	}

	if len(product.Actuator) > 0 {
		var actuator models.ActuatorInfo
		if err := json.Unmarshal(product.Actuator, &actuator); err == nil {
			payload.Actuator = &actuator
		}
	}
	if len(product.Accessories) > 0 {
		var accessories []models.AccessoryInfo
		if err := json.Unmarshal(product.Accessories, &accessories); err == nil {
			payload.Accessories = accessories
		}
	}
	if len(product.TechnicalCard) > 0 {
		var card map[string]interface{}
		if err := json.Unmarshal(product.TechnicalCard, &card); err == nil {
			payload.TechnicalCard = card
		}
	}
	return payload
}

// promoteTaxonomy upserts every non-empty attribute of a saved product into
// the shared taxonomy, so values typed on any product grow the enumerations.
func promoteTaxonomy(payload *models.ProductPayload) {
	db := database.Database.Db

	upsert := func(field, value string) {
		if value == "" {
			return
		}
		var existing models.TaxonomyValue
		if err := db.Where("field = ? AND value = ?", field, value).First(&existing).Error; err == nil {
			return
		}
		if err := db.Create(&models.TaxonomyValue{Field: field, Value: value}).Error; err != nil {
			log.Printf("Error promoting taxonomy value %s/%s: %v", field, value, err)
		}
	}

	for field, value := range taxonomy.RecordValues(payload) {
		upsert(field, value)
	}
	for _, accessory := range payload.Accessories {
		upsert(taxonomy.FieldAccessoryKey, accessory.Key)
		upsert(taxonomy.FieldAccessoryBrand, accessory.Brand)
		upsert(taxonomy.FieldAccessoryModel, accessory.Model)
	}
}

func ProductList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Product{})
	if customerId := c.QueryInt("customer_id"); customerId > 0 {
		db = db.Where("customer_id = ?", customerId)
	}
	if brandId := c.QueryInt("brand_id"); brandId > 0 {
		db = db.Where("brand_id = ?", brandId)
	}
	if modelId := c.QueryInt("model_id"); modelId > 0 {
		db = db.Where("model_id = ?", modelId)
	}

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	payloads := make([]models.ProductPayload, 0, len(products))
	for i := range products {
		payloads = append(payloads, toPayload(&products[i]))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched successfully!", payloads)
}

// ProductOptions serves the picker rows consumed by the report wizard.
func ProductOptions(c *fiber.Ctx) error {
	var products []models.Product
	if err := database.Database.Db.Order("tag_no ASC").Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	options := make([]models.ProductOption, 0, len(products))
	for _, product := range products {
		options = append(options, models.ProductOption{
			ID:        product.ID,
			Type:      product.Type,
			TagNo:     product.TagNo,
			ValveType: product.ValveType,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product options fetched successfully!", options)
}

func CreateProduct(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProduct").(*models.ProductPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var product models.Product
	toModel(reqData, &product)

	if err := database.Database.Db.Create(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	promoteTaxonomy(reqData)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product created successfully!", models.CreateResult{ID: product.ID})
}

func GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var product models.Product
	if err := database.Database.Db.First(&product, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched successfully!", toPayload(&product))
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedProduct").(*models.ProductPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var product models.Product
	if err := database.Database.Db.First(&product, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	toModel(reqData, &product)
	if err := database.Database.Db.Save(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update product!", nil)
	}

	promoteTaxonomy(reqData)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated successfully!", nil)
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Product{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete product!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted successfully!", nil)
}
