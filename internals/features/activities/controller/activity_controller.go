package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/activities/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type ActivityController struct {
	Mirror *mirror.Mirror
}

func NewActivityController(m *mirror.Mirror) *ActivityController {
	return &ActivityController{Mirror: m}
}

// 🟢 GET /api/public/activities?category=kajian
func (ctrl *ActivityController) GetAll(c *fiber.Ctx) error {
	records := ctrl.Mirror.Activities()

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filtered := make([]mirror.Activity, 0, len(records))
		for _, rec := range records {
			if strings.EqualFold(rec.Category, category) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return helper.JsonOK(c, "Daftar kegiatan", dto.ToActivityResponseList(records))
}

// 🟢 GET /api/public/activities/:id
func (ctrl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, ok := ctrl.Mirror.FindActivity(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail kegiatan", dto.ToActivityResponse(rec))
}

// 🟢 POST /api/a/activities
func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := ctrl.Mirror.AddActivity(req.ToRecord(uuid.Nil))
	return helper.JsonCreated(c, "Kegiatan berhasil ditambahkan", dto.ToActivityResponse(rec))
}

// 🟡 PUT /api/a/activities/:id
func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := req.ToRecord(id)
	if !ctrl.Mirror.UpdateActivity(rec) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kegiatan berhasil diperbarui", dto.ToActivityResponse(rec))
}

// 🔴 DELETE /api/a/activities/:id
func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ctrl.Mirror.DeleteActivity(id)
	return helper.JsonDeleted(c, "Kegiatan berhasil dihapus", nil)
}
