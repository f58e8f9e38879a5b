package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidhub_backend/internals/configs"
	"masjidhub_backend/internals/features/admins/controller"
	"masjidhub_backend/internals/features/admins/service"
	middlewares "masjidhub_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	verifier := service.NewDBCredentialVerifier(db)
	google := service.NewGoogleTokenVerifier(db, configs.GoogleClientID)
	authCtrl := controller.NewAuthController(verifier, google)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
}

// AdminAuthRoutes dipasang di group /api/a yang sudah dilindungi JWT.
func AdminAuthRoutes(api fiber.Router, db *gorm.DB) {
	verifier := service.NewDBCredentialVerifier(db)
	authCtrl := controller.NewAuthController(verifier, nil)
	api.Get("/me", authCtrl.Me)
}
