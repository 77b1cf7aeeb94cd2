package actionLibraryValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

// LibraryItem validates action library create/update bodies. Both language
// texts are mandatory; reports snapshot whichever language they print.
func LibraryItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ActionLibraryItem)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Scope = strings.TrimSpace(reqData.Scope)
		if reqData.Scope == "" {
			errors["scope"] = "Scope is required!"
		}

		reqData.TextTr = strings.TrimSpace(reqData.TextTr)
		if reqData.TextTr == "" {
			errors["text_tr"] = "Turkish text is required!"
		}

		reqData.TextEn = strings.TrimSpace(reqData.TextEn)
		if reqData.TextEn == "" {
			errors["text_en"] = "English text is required!"
		}

		reqData.ValveType = strings.TrimSpace(reqData.ValveType)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLibraryItem", reqData)
		return c.Next()
	}
}
