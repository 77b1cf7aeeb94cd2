package productValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

// Product validates product create/update bodies. The attribute fields are
// free-form taxonomy values, so only structural requirements are enforced
// here; the typed values themselves grow the shared enumerations on save.
func Product() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ProductPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customer_id"] = "Customer is required!"
		}

		reqData.Type = strings.TrimSpace(reqData.Type)
		reqData.ValveType = strings.TrimSpace(reqData.ValveType)
		reqData.TagNo = strings.TrimSpace(reqData.TagNo)
		reqData.SerialNo = strings.TrimSpace(reqData.SerialNo)

		for i := range reqData.Accessories {
			reqData.Accessories[i].Key = strings.TrimSpace(reqData.Accessories[i].Key)
			if reqData.Accessories[i].Key == "" {
				errors["accessories"] = "Accessory key is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}
