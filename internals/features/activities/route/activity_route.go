package route

import (
	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/features/activities/controller"
	"masjidhub_backend/internals/mirror"
)

func AllActivityRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewActivityController(m)
	api.Get("/activities", ctrl.GetAll)
	api.Get("/activities/:id", ctrl.GetByID)
}

func ActivityAdminRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewActivityController(m)
	activities := api.Group("/activities")
	activities.Get("/", ctrl.GetAll)
	activities.Post("/", ctrl.Create)
	activities.Put("/:id", ctrl.Update)
	activities.Delete("/:id", ctrl.Delete)
}
