package reportValidators

import (
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
)

var validLanguage = map[string]bool{"tr": true, "en": true}

var validStatus = func() map[string]bool {
	statuses := make(map[string]bool, len(models.StatusFlow))
	for _, s := range models.StatusFlow {
		statuses[s] = true
	}
	return statuses
}()

// Report validates create/update report bodies. All content sections are
// optional; only the identity of the report (customer, responsible user) and
// the enumerated fields are enforced.
func Report() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ReportPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customer_id"] = "Customer is required!"
		}

		reqData.ResponsibleUser = strings.TrimSpace(reqData.ResponsibleUser)
		if reqData.ResponsibleUser == "" {
			errors["responsible_user"] = "Responsible user is required!"
		}

		if reqData.Language == "" {
			reqData.Language = "tr"
		} else if !validLanguage[reqData.Language] {
			errors["language"] = "Language must be tr or en!"
		}

		if reqData.Status == "" {
			reqData.Status = models.StatusDraft
		} else if !validStatus[reqData.Status] {
			errors["status"] = "Invalid report status!"
		}

		// Action rows must keep contiguous order and carry their snapshots
		for i, action := range reqData.Actions {
			if action.OrderIndex != i {
				errors["actions"] = "Action order indexes must be contiguous from 0!"
				break
			}
			if strings.TrimSpace(action.SnapshotTextTr) == "" && strings.TrimSpace(action.SnapshotTextEn) == "" {
				errors["actions"] = "Action snapshot text is required!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReport", reqData)
		return c.Next()
	}
}
