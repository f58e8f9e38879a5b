package route

import (
	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/features/messages/controller"
	"masjidhub_backend/internals/middlewares"
	"masjidhub_backend/internals/mirror"
)

func AllMessageRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewMessageController(m)
	api.Post("/contact-messages", middlewares.PublicFormRateLimiter(), ctrl.Create)
}

func MessageAdminRoutes(api fiber.Router, m *mirror.Mirror) {
	ctrl := controller.NewMessageController(m)
	messages := api.Group("/messages")
	messages.Get("/", ctrl.GetAll)
	messages.Get("/:id", ctrl.GetByID)
	messages.Delete("/:id", ctrl.Delete)
}
