package catalogRoutes

import (
	catalogController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/catalog"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	brandGroup := app.Group("/brands")

	brandGroup.Get("/", middleware.JWTMiddleware, catalogController.BrandList)
	brandGroup.Post("/", middleware.JWTMiddleware, catalogController.CreateBrand)
	brandGroup.Post("/:id/models", middleware.JWTMiddleware, catalogController.CreateValveModel)

	modelGroup := app.Group("/models")
	modelGroup.Get("/:id", middleware.JWTMiddleware, catalogController.GetValveModel)
	modelGroup.Patch("/:id", middleware.JWTMiddleware, catalogController.UpdateValveModel)
	modelGroup.Delete("/:id", middleware.JWTMiddleware, catalogController.DeleteValveModel)
}
