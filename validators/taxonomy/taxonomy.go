package taxonomyValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
	"github.com/yilfev-stack/yeniservisrapor26022026/taxonomy"

	"github.com/gofiber/fiber/v2"
)

var knownField = func() map[string]bool {
	fields := make(map[string]bool, len(taxonomy.Fields))
	for _, f := range taxonomy.Fields {
		fields[f] = true
	}
	return fields
}()

// Value validates a taxonomy publish body: the field must be one of the known
// attribute fields and the value non-empty after trimming.
func Value() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.TaxonomyValue)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !knownField[reqData.Field] {
			errors["field"] = "Unknown taxonomy field!"
		}

		reqData.Value = strings.TrimSpace(reqData.Value)
		if reqData.Value == "" {
			errors["value"] = "Value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTaxonomyValue", reqData)
		return c.Next()
	}
}
