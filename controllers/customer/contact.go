package customerController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

func ContactList(c *fiber.Ctx) error {
	customerId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var contacts []models.Contact
	if err := database.Database.Db.Where("customer_id = ?", customerId).Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contacts!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contacts fetched successfully!", contacts)
}

func CreateContact(c *fiber.Ctx) error {
	customerId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedContact").(*models.Contact)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	reqData.CustomerID = uint(customerId)

	// A new default contact replaces the previous one
	if reqData.IsDefault {
		database.Database.Db.Model(&models.Contact{}).
			Where("customer_id = ?", customerId).Update("is_default", false)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create contact!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact created successfully!", models.CreateResult{ID: reqData.ID})
}

func UpdateContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedContact").(*models.Contact)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var contact models.Contact
	if err := database.Database.Db.First(&contact, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	if reqData.IsDefault && !contact.IsDefault {
		database.Database.Db.Model(&models.Contact{}).
			Where("customer_id = ?", contact.CustomerID).Update("is_default", false)
	}

	reqData.ID = contact.ID
	reqData.CustomerID = contact.CustomerID
	reqData.CreatedAt = contact.CreatedAt
	if err := database.Database.Db.Save(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update contact!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact updated successfully!", nil)
}

func DeleteContact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Contact{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete contact!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact deleted successfully!", nil)
}
