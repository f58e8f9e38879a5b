package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/media/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type VideoController struct {
	Mirror *mirror.Mirror
}

func NewVideoController(m *mirror.Mirror) *VideoController {
	return &VideoController{Mirror: m}
}

// 🟢 GET /api/public/videos
func (ctrl *VideoController) GetAll(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Galeri video", dto.ToVideoResponseList(ctrl.Mirror.Videos()))
}

// 🟢 POST /api/a/videos
func (ctrl *VideoController) Create(c *fiber.Ctx) error {
	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := ctrl.Mirror.AddVideo(req.ToRecord(uuid.Nil))
	return helper.JsonCreated(c, "Video berhasil ditambahkan", dto.ToVideoResponse(rec))
}

// 🟡 PUT /api/a/videos/:id
func (ctrl *VideoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := req.ToRecord(id)
	if !ctrl.Mirror.UpdateVideo(rec) {
		return helper.JsonError(c, fiber.StatusNotFound, "Video tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Video berhasil diperbarui", dto.ToVideoResponse(rec))
}

// 🔴 DELETE /api/a/videos/:id
func (ctrl *VideoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ctrl.Mirror.DeleteVideo(id)
	return helper.JsonDeleted(c, "Video berhasil dihapus", nil)
}
