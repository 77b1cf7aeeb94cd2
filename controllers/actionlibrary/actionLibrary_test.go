package actionLibraryController

import (
	"bytes"
	"encoding/json"
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
	require.NoError(t, db.AutoMigrate(&models.ActionLibraryItem{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

func postReorder(t *testing.T, app *fiber.App, body interface{}) int {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/action-library/reorder", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestReorderLibraryAppliesIndexes(t *testing.T) {
	db := setupTestDB(t)

	first := models.ActionLibraryItem{Scope: "valve", TextTr: "a", TextEn: "a", OrderIndex: 1, IsActive: true}
	second := models.ActionLibraryItem{Scope: "valve", TextTr: "b", TextEn: "b", OrderIndex: 2, IsActive: true}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	app := fiber.New()
	app.Post("/action-library/reorder", ReorderLibrary)

	code := postReorder(t, app, []fiber.Map{
		{"id": first.ID, "order_index": 2},
		{"id": second.ID, "order_index": 1},
	})
	require.Equal(t, fiber.StatusOK, code)

	var reloaded models.ActionLibraryItem
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.Equal(t, 2, reloaded.OrderIndex)
	reloaded = models.ActionLibraryItem{}
	require.NoError(t, db.First(&reloaded, second.ID).Error)
	assert.Equal(t, 1, reloaded.OrderIndex)
}

func TestReorderLibrarySurfacesWriteFailure(t *testing.T) {
	db := setupTestDB(t)

	item := models.ActionLibraryItem{Scope: "valve", TextTr: "a", TextEn: "a", OrderIndex: 1, IsActive: true}
	require.NoError(t, db.Create(&item).Error)

	app := fiber.New()
	app.Post("/action-library/reorder", ReorderLibrary)

	require.NoError(t, db.Migrator().DropTable(&models.ActionLibraryItem{}))

	code := postReorder(t, app, []fiber.Map{{"id": item.ID, "order_index": 5}})
	assert.Equal(t, fiber.StatusInternalServerError, code, "a failed row update must not report success")
}
