package reportRoutes

import (
	mediaController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/media"
	reportController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/report"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	reportValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/reports")

	reportGroup.Get("/", middleware.JWTMiddleware, reportController.ReportList)
	reportGroup.Post("/", reportValidators.Report(), middleware.JWTMiddleware, reportController.CreateReport)
	reportGroup.Get("/:id", middleware.JWTMiddleware, reportController.GetReport)
	reportGroup.Patch("/:id", reportValidators.Report(), middleware.JWTMiddleware, reportController.UpdateReport)
	reportGroup.Delete("/:id", middleware.JWTMiddleware, reportController.DeleteReport)

	// Lifecycle
	reportGroup.Post("/:id/status", middleware.JWTMiddleware, reportController.TransitionStatus)
	reportGroup.Post("/:id/revision", middleware.JWTMiddleware, reportController.CreateRevision)
	reportGroup.Post("/:id/duplicate", middleware.JWTMiddleware, reportController.DuplicateReport)

	// Photos
	reportGroup.Post("/:id/photos", middleware.JWTMiddleware, mediaController.UploadPhoto)
	reportGroup.Get("/:id/photos", middleware.JWTMiddleware, mediaController.PhotoList)
	reportGroup.Delete("/:id/photos/:photoId", middleware.JWTMiddleware, mediaController.DeletePhoto)

	// Exports
	reportGroup.Post("/:id/export", middleware.JWTMiddleware, reportController.ExportReport)
	app.Get("/exports", middleware.JWTMiddleware, reportController.ExportIndex)
	app.Get("/exports/:filename", middleware.JWTMiddleware, reportController.DownloadExport)

	app.Get("/issuers/:id/reports", middleware.JWTMiddleware, reportController.IssuerReports)
	app.Get("/dashboard/kpis", middleware.JWTMiddleware, reportController.DashboardKPIs)
}
