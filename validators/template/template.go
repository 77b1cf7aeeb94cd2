package templateValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

var validTemplateType = map[string]bool{
	"action":    true,
	"problem":   true,
	"complaint": true,
}

var validTemplateLanguage = map[string]bool{
	"tr":   true,
	"en":   true,
	"both": true,
}

func Template() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Template)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Type = strings.TrimSpace(reqData.Type)
		if !validTemplateType[reqData.Type] {
			errors["type"] = "Type must be action, problem or complaint!"
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		reqData.Text = strings.TrimSpace(reqData.Text)
		if reqData.Text == "" {
			errors["text"] = "Text is required!"
		}

		if reqData.Language == "" {
			reqData.Language = "tr"
		}
		if !validTemplateLanguage[reqData.Language] {
			errors["language"] = "Language must be tr, en or both!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}
