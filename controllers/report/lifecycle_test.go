package reportController

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Report{}, &models.ReportPhoto{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

func transition(t *testing.T, app *fiber.App, reportID uint, target string) int {
	t.Helper()

	url := fmt.Sprintf("/reports/%d/status?status=%s", reportID, target)
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func inServiceReport(t *testing.T, db *gorm.DB) models.Report {
	t.Helper()

	report := models.Report{
		ReportNo:        "SR-260831-001",
		Status:          models.StatusInService,
		CustomerID:      1,
		ResponsibleUser: "a.tekin",
		Actions: encodeActions([]models.ReportAction{
			{LibraryID: 1, SnapshotTextTr: "Gövde temizlendi.", OrderIndex: 0},
		}),
	}
	require.NoError(t, db.Create(&report).Error)
	return report
}

func TestTransitionToFinalReportGatedOnAfterPhotos(t *testing.T) {
	db := setupTestDB(t)
	report := inServiceReport(t, db)

	app := fiber.New()
	app.Post("/reports/:id/status", TransitionStatus)

	code := transition(t, app, report.ID, models.StatusFinalReport)
	assert.Equal(t, fiber.StatusBadRequest, code, "no after photos yet")

	photo := models.ReportPhoto{ReportID: report.ID, Set: "after", Path: "p.jpg"}
	require.NoError(t, db.Create(&photo).Error)

	code = transition(t, app, report.ID, models.StatusFinalReport)
	require.Equal(t, fiber.StatusOK, code)

	var reloaded models.Report
	require.NoError(t, db.First(&reloaded, report.ID).Error)
	assert.Equal(t, models.StatusFinalReport, reloaded.Status)
}

func TestTransitionRejectsStageSkip(t *testing.T) {
	db := setupTestDB(t)

	report := models.Report{ReportNo: "SR-260831-002", Status: models.StatusDraft, CustomerID: 1}
	require.NoError(t, db.Create(&report).Error)

	app := fiber.New()
	app.Post("/reports/:id/status", TransitionStatus)

	code := transition(t, app, report.ID, models.StatusApproved)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code = transition(t, app, report.ID, models.StatusPreReport)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestTransitionPhotoCountFailureIsServerError(t *testing.T) {
	db := setupTestDB(t)
	report := inServiceReport(t, db)

	require.NoError(t, db.Migrator().DropTable(&models.ReportPhoto{}))

	app := fiber.New()
	app.Post("/reports/:id/status", TransitionStatus)

	code := transition(t, app, report.ID, models.StatusFinalReport)
	assert.Equal(t, fiber.StatusInternalServerError, code,
		"a failed photo lookup must not masquerade as a validation failure")
}
