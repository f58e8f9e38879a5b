package route

import (
	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/features/facilities/controller"
	"masjidhub_backend/internals/mirror"
)

func AllFacilityRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewFacilityController(m)
	api.Get("/facilities", ctrl.GetAll)
}

func FacilityAdminRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewFacilityController(m)
	facilities := api.Group("/facilities")
	facilities.Get("/", ctrl.GetAll)
	facilities.Post("/", ctrl.Create)
	facilities.Put("/:id", ctrl.Update)
	facilities.Delete("/:id", ctrl.Delete)
}
