package settingsRoutes

import (
	settingsController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/settings"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	settingsValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/settings"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	profileGroup := app.Group("/settings/company-profiles")

	profileGroup.Get("/", middleware.JWTMiddleware, settingsController.ProfileList)
	profileGroup.Post("/", settingsValidators.CompanyProfile(), middleware.JWTMiddleware, settingsController.CreateProfile)
	profileGroup.Patch("/:id", settingsValidators.CompanyProfile(), middleware.JWTMiddleware, settingsController.UpdateProfile)
	profileGroup.Delete("/:id", middleware.JWTMiddleware, settingsController.DeleteProfile)
	profileGroup.Post("/:id/logo", middleware.JWTMiddleware, settingsController.UploadLogo)

	// Issuer is the report-facing name for a company profile.
	app.Get("/settings/issuers", middleware.JWTMiddleware, settingsController.ProfileList)
}
