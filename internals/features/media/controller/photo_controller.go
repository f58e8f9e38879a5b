package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidhub_backend/internals/features/media/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type PhotoController struct {
	Mirror *mirror.Mirror
}

func NewPhotoController(m *mirror.Mirror) *PhotoController {
	return &PhotoController{Mirror: m}
}

// 🟢 GET /api/public/photos?category=kegiatan
func (ctrl *PhotoController) GetAll(c *fiber.Ctx) error {
	records := ctrl.Mirror.Photos()

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filtered := make([]mirror.Photo, 0, len(records))
		for _, rec := range records {
			if strings.EqualFold(rec.Category, category) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return helper.JsonOK(c, "Galeri foto", dto.ToPhotoResponseList(records))
}

// 🟢 POST /api/a/photos
func (ctrl *PhotoController) Create(c *fiber.Ctx) error {
	var req dto.PhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := ctrl.Mirror.AddPhoto(req.ToRecord(uuid.Nil))
	return helper.JsonCreated(c, "Foto berhasil ditambahkan", dto.ToPhotoResponse(rec))
}

// 🟡 PUT /api/a/photos/:id
func (ctrl *PhotoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	rec := req.ToRecord(id)
	if !ctrl.Mirror.UpdatePhoto(rec) {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Foto berhasil diperbarui", dto.ToPhotoResponse(rec))
}

// 🔴 DELETE /api/a/photos/:id
func (ctrl *PhotoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ctrl.Mirror.DeletePhoto(id)
	return helper.JsonDeleted(c, "Foto berhasil dihapus", nil)
}
