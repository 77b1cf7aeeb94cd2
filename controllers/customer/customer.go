package customerController

import (
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

func CustomerList(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := database.Database.Db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch customers!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched successfully!", customers)
}

// CustomerOptions serves the {id, name} picker rows consumed by the report
// wizard.
func CustomerOptions(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := database.Database.Db.Order("name ASC").Find(&customers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch customers!", nil)
	}

	options := make([]models.CustomerOption, 0, len(customers))
	for _, customer := range customers {
		options = append(options, models.CustomerOption{ID: customer.ID, Name: customer.Name})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer options fetched successfully!", options)
}

func CreateCustomer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCustomer").(*models.Customer)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create customer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer created successfully!", models.CreateResult{ID: reqData.ID})
}

func GetCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var customer models.Customer
	if err := database.Database.Db.First(&customer, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer fetched successfully!", customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedCustomer").(*models.Customer)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var customer models.Customer
	if err := database.Database.Db.First(&customer, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	reqData.ID = customer.ID
	reqData.CreatedAt = customer.CreatedAt
	if err := database.Database.Db.Save(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update customer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer updated successfully!", nil)
}

func DeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := database.Database.Db.Delete(&models.Customer{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete customer!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer deleted successfully!", nil)
}
