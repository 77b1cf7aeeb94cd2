package productRoutes

import (
	productController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/product"
	reportController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/report"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	productValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/product"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productGroup := app.Group("/products")

	productGroup.Get("/", middleware.JWTMiddleware, productController.ProductList)
	productGroup.Get("/options", middleware.JWTMiddleware, productController.ProductOptions)
	productGroup.Post("/", productValidators.Product(), middleware.JWTMiddleware, productController.CreateProduct)
	productGroup.Get("/:id", middleware.JWTMiddleware, productController.GetProduct)
	productGroup.Put("/:id", productValidators.Product(), middleware.JWTMiddleware, productController.UpdateProduct)
	productGroup.Delete("/:id", middleware.JWTMiddleware, productController.DeleteProduct)

	productGroup.Get("/:id/service-history", middleware.JWTMiddleware, reportController.ServiceHistory)
}
