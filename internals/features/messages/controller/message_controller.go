package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/messages/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type MessageController struct {
	Mirror *mirror.Mirror
}

func NewMessageController(m *mirror.Mirror) *MessageController {
	return &MessageController{Mirror: m}
}

// 🟢 POST /api/public/contact-messages — form kontak jamaah
func (ctrl *MessageController) Create(c *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	// IsRead & CreatedAt distempel mirror, input caller diabaikan
	rec := ctrl.Mirror.AddMessage(req.ToRecord())
	return helper.JsonCreated(c, "Pesan berhasil dikirim", dto.ToContactMessageResponse(rec))
}

// 🟢 GET /api/a/messages
func (ctrl *MessageController) GetAll(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar pesan masuk", dto.ToContactMessageResponseList(ctrl.Mirror.Messages()))
}

// 🟡 GET /api/a/messages/:id — membuka detail menandai pesan terbaca
func (ctrl *MessageController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, ok := ctrl.Mirror.FindMessage(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
	}

	if !rec.IsRead {
		ctrl.Mirror.SetMessageRead(id, true)
		rec.IsRead = true
	}
	return helper.JsonOK(c, "Detail pesan", dto.ToContactMessageResponse(rec))
}

// 🔴 DELETE /api/a/messages/:id
func (ctrl *MessageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ctrl.Mirror.DeleteMessage(id)
	return helper.JsonDeleted(c, "Pesan berhasil dihapus", nil)
}
