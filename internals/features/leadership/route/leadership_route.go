package route

import (
	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/features/leadership/controller"
	"masjidhub_backend/internals/mirror"
)

// Route publik (profil masjid)
func AllLeadershipRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewLeadershipController(m)
	api.Get("/leadership", ctrl.GetAll)
}

// Route admin console
func LeadershipAdminRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewLeadershipController(m)
	leadership := api.Group("/leadership")
	leadership.Get("/", ctrl.GetAll)
	leadership.Post("/", ctrl.Create)
	leadership.Put("/:id", ctrl.Update)
	leadership.Delete("/:id", ctrl.Delete)
}
