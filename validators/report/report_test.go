package reportValidators

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReport(t *testing.T, payload models.ReportPayload) (int, *models.ReportPayload) {
	t.Helper()

	app := fiber.New()
	var captured *models.ReportPayload
	app.Post("/reports", Report(), func(c *fiber.Ctx) error {
		captured = c.Locals("validatedReport").(*models.ReportPayload)
		return c.SendStatus(fiber.StatusOK)
	})

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode, captured
}

func validPayload() models.ReportPayload {
	return models.ReportPayload{
		CustomerID:      1,
		ResponsibleUser: "a.tekin",
	}
}

func TestReportValidatorDefaults(t *testing.T) {
	code, captured := postReport(t, validPayload())

	require.Equal(t, fiber.StatusOK, code)
	require.NotNil(t, captured)
	assert.Equal(t, "tr", captured.Language)
	assert.Equal(t, models.StatusDraft, captured.Status)
}

func TestReportValidatorRequiresIdentity(t *testing.T) {
	payload := validPayload()
	payload.CustomerID = 0
	code, _ := postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	payload = validPayload()
	payload.ResponsibleUser = "   "
	code, _ = postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestReportValidatorRejectsUnknownEnums(t *testing.T) {
	payload := validPayload()
	payload.Language = "de"
	code, _ := postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	payload = validPayload()
	payload.Status = "bogus"
	code, _ = postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestReportValidatorActionRows(t *testing.T) {
	payload := validPayload()
	payload.Actions = []models.ReportAction{
		{LibraryID: 1, SnapshotTextTr: "a", OrderIndex: 0},
		{LibraryID: 2, SnapshotTextTr: "b", OrderIndex: 2},
	}
	code, _ := postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code, "gap in order indexes rejected")

	payload.Actions[1].OrderIndex = 1
	payload.Actions[1].SnapshotTextTr = ""
	code, _ = postReport(t, payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code, "missing snapshot text rejected")

	payload.Actions[1].SnapshotTextEn = "b"
	code, captured := postReport(t, payload)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, captured.Actions, 2)
}
