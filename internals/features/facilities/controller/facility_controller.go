package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/facilities/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type FacilityController struct {
	Mirror *mirror.Mirror
}

func NewFacilityController(m *mirror.Mirror) *FacilityController {
	return &FacilityController{Mirror: m}
}

// 🟢 GET /api/public/facilities
func (ctrl *FacilityController) GetAll(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar fasilitas", dto.ToFacilityResponseList(ctrl.Mirror.Facilities()))
}

// 🟢 POST /api/a/facilities
func (ctrl *FacilityController) Create(c *fiber.Ctx) error {
	var req dto.FacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := ctrl.Mirror.AddFacility(req.ToRecord(uuid.Nil))
	return helper.JsonCreated(c, "Fasilitas berhasil ditambahkan", dto.ToFacilityResponse(rec))
}

// 🟡 PUT /api/a/facilities/:id
func (ctrl *FacilityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.FacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := req.ToRecord(id)
	if !ctrl.Mirror.UpdateFacility(rec) {
		return helper.JsonError(c, fiber.StatusNotFound, "Fasilitas tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Fasilitas berhasil diperbarui", dto.ToFacilityResponse(rec))
}

// 🔴 DELETE /api/a/facilities/:id
func (ctrl *FacilityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ctrl.Mirror.DeleteFacility(id)
	return helper.JsonDeleted(c, "Fasilitas berhasil dihapus", nil)
}
