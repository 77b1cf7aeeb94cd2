package templateRoutes

import (
	templateController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/template"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	templateValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/template"

	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(app *fiber.App) {
	templateGroup := app.Group("/templates")

	templateGroup.Get("/", middleware.JWTMiddleware, templateController.TemplateList)
	templateGroup.Post("/", templateValidators.Template(), middleware.JWTMiddleware, templateController.CreateTemplate)
	templateGroup.Patch("/:id", templateValidators.Template(), middleware.JWTMiddleware, templateController.UpdateTemplate)
	templateGroup.Delete("/:id", middleware.JWTMiddleware, templateController.DeleteTemplate)
}
