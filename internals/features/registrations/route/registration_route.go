package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidhub_backend/internals/features/registrations/controller"
	"masjidhub_backend/internals/middlewares"
	"masjidhub_backend/internals/mirror"
)

func AllRegistrationRoutes(api fiber.Router, db *gorm.DB, m *mirror.Mirror) {
	ctrl := controller.NewRegistrationController(db, m)
	api.Post("/registrations", middlewares.PublicFormRateLimiter(), ctrl.Create)
}

func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB, m *mirror.Mirror) {
	ctrl := controller.NewRegistrationController(db, m)
	registrations := api.Group("/registrations")
	registrations.Get("/", ctrl.GetAll)
	registrations.Get("/export", ctrl.Export)
}
