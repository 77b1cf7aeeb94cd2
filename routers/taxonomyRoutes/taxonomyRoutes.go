package taxonomyRoutes

import (
	taxonomyController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/taxonomy"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	taxonomyValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/taxonomy"

	"github.com/gofiber/fiber/v2"
)

func SetupTaxonomyRoutes(app *fiber.App) {
	taxonomyGroup := app.Group("/taxonomy")

	taxonomyGroup.Get("/", middleware.JWTMiddleware, taxonomyController.GetTaxonomy)
	taxonomyGroup.Post("/", taxonomyValidators.Value(), middleware.JWTMiddleware, taxonomyController.PostTaxonomyValue)
}
