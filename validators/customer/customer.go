package customerValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
)

// Customer validates customer create/update bodies. Phone numbers are stored
// in their canonical 10-digit form.
func Customer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Customer)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Customer name is required!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if !utils.ValidEmail(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if reqData.Phone != "" {
			digits := utils.NormalizePhone(reqData.Phone)
			if len(digits) != 10 {
				errors["phone"] = "Invalid phone number!"
			} else {
				reqData.Phone = digits
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCustomer", reqData)
		return c.Next()
	}
}

// Contact validates contact create/update bodies.
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Contact)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Contact name is required!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if !utils.ValidEmail(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if reqData.Phone != "" {
			digits := utils.NormalizePhone(reqData.Phone)
			if len(digits) != 10 {
				errors["phone"] = "Invalid phone number!"
			} else {
				reqData.Phone = digits
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
