package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/leadership/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type LeadershipController struct {
	Mirror *mirror.Mirror
}

func NewLeadershipController(m *mirror.Mirror) *LeadershipController {
	return &LeadershipController{Mirror: m}
}

// 🟢 GET /api/public/leadership
func (ctrl *LeadershipController) GetAll(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar pengurus", dto.ToLeadershipResponseList(ctrl.Mirror.Leadership()))
}

// 🟢 POST /api/a/leadership
func (ctrl *LeadershipController) Create(c *fiber.Ctx) error {
	var req dto.LeadershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := ctrl.Mirror.AddLeadership(req.ToRecord(uuid.Nil))
	return helper.JsonCreated(c, "Pengurus berhasil ditambahkan", dto.ToLeadershipResponse(rec))
}

// 🟡 PUT /api/a/leadership/:id
func (ctrl *LeadershipController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.LeadershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := req.ToRecord(id)
	if !ctrl.Mirror.UpdateLeadership(rec) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Pengurus berhasil diperbarui", dto.ToLeadershipResponse(rec))
}

// 🔴 DELETE /api/a/leadership/:id
func (ctrl *LeadershipController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// idempotent: delete id yang sudah hilang tetap sukses
	ctrl.Mirror.DeleteLeadership(id)
	return helper.JsonDeleted(c, "Pengurus berhasil dihapus", nil)
}
