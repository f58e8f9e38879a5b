package route

import (
	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/features/media/controller"
	"masjidhub_backend/internals/helpers/oss"
	"masjidhub_backend/internals/mirror"
)

func AllMediaRoutes(api fiber.Router, m *mirror.Mirror) {
	photoCtrl := controller.NewPhotoController(m)
	videoCtrl := controller.NewVideoController(m)
	api.Get("/photos", photoCtrl.GetAll)
	api.Get("/videos", videoCtrl.GetAll)
}

func MediaAdminRoutes(api fiber.Router, m *mirror.Mirror, g *oss.Gatekeeper) {
	photoCtrl := controller.NewPhotoController(m)
	photos := api.Group("/photos")
	photos.Get("/", photoCtrl.GetAll)
	photos.Post("/", photoCtrl.Create)
	photos.Put("/:id", photoCtrl.Update)
	photos.Delete("/:id", photoCtrl.Delete)

	videoCtrl := controller.NewVideoController(m)
	videos := api.Group("/videos")
	videos.Get("/", videoCtrl.GetAll)
	videos.Post("/", videoCtrl.Create)
	videos.Put("/:id", videoCtrl.Update)
	videos.Delete("/:id", videoCtrl.Delete)

	uploadCtrl := controller.NewUploadController(g)
	uploads := api.Group("/uploads")
	uploads.Post("/", uploadCtrl.Upload)
	uploads.Post("/image", uploadCtrl.UploadImage)
	uploads.Post("/video", uploadCtrl.UploadVideo)
	uploads.Post("/video-thumbnail", uploadCtrl.UploadVideoThumbnail)
}
