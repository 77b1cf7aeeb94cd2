package libraryRoutes

import (
	actionLibraryController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/actionlibrary"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	actionLibraryValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/actionlibrary"

	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App) {
	libraryGroup := app.Group("/action-library")

	libraryGroup.Get("/", middleware.JWTMiddleware, actionLibraryController.LibraryList)
	libraryGroup.Get("/catalog", middleware.JWTMiddleware, actionLibraryController.Catalog)
	libraryGroup.Post("/", actionLibraryValidators.LibraryItem(), middleware.JWTMiddleware, actionLibraryController.CreateLibraryItem)
	libraryGroup.Post("/reorder", middleware.JWTMiddleware, actionLibraryController.ReorderLibrary)
	libraryGroup.Patch("/:id", actionLibraryValidators.LibraryItem(), middleware.JWTMiddleware, actionLibraryController.UpdateLibraryItem)
	libraryGroup.Delete("/:id", middleware.JWTMiddleware, actionLibraryController.DeleteLibraryItem)
}
