package main

import (
	"log"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	actionLibraryController "github.com/yilfev-stack/yeniservisrapor26022026/controllers/actionlibrary"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	authRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/authRoutes"
	catalogRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/catalogRoutes"
	customerRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/customerRoutes"
	libraryRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/libraryRoutes"
	productRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/productRoutes"
	reportRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/reportRoutes"
	settingsRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/settingsRoutes"
	taxonomyRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/taxonomyRoutes"
	templateRoutes "github.com/yilfev-stack/yeniservisrapor26022026/routers/templateRoutes"
	"github.com/yilfev-stack/yeniservisrapor26022026/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if created := actionLibraryController.EnsureSeed(database.Database.Db); created > 0 {
		log.Printf("Seeded %d action library entries", created)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Serve uploaded photos and logos
	app.Static("/files/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	customerRoutes.SetupCustomerRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	productRoutes.SetupProductRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	libraryRoutes.SetupLibraryRoutes(app)
	taxonomyRoutes.SetupTaxonomyRoutes(app)
	templateRoutes.SetupTemplateRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)

	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
