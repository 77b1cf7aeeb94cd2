package authRoutes

import (
	authControllers "github.com/yilfev-stack/yeniservisrapor26022026/controllers/auth"
	"github.com/yilfev-stack/yeniservisrapor26022026/middleware"
	authValidators "github.com/yilfev-stack/yeniservisrapor26022026/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
