package customerRoutes

import (
	customerController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/customer"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	customerValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/customer"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customers")

	customerGroup.Get("/", middleware.JWTMiddleware, customerController.CustomerList)
	customerGroup.Get("/options", middleware.JWTMiddleware, customerController.CustomerOptions)
	customerGroup.Post("/", customerValidators.Customer(), middleware.JWTMiddleware, customerController.CreateCustomer)
	customerGroup.Get("/:id", middleware.JWTMiddleware, customerController.GetCustomer)
	customerGroup.Patch("/:id", customerValidators.Customer(), middleware.JWTMiddleware, customerController.UpdateCustomer)
	customerGroup.Delete("/:id", middleware.JWTMiddleware, customerController.DeleteCustomer)

	customerGroup.Get("/:id/contacts", middleware.JWTMiddleware, customerController.ContactList)
	customerGroup.Post("/:id/contacts", customerValidators.Contact(), middleware.JWTMiddleware, customerController.CreateContact)

	contactGroup := app.Group("/contacts")
	contactGroup.Patch("/:id", customerValidators.Contact(), middleware.JWTMiddleware, customerController.UpdateContact)
	contactGroup.Delete("/:id", middleware.JWTMiddleware, customerController.DeleteContact)
}
