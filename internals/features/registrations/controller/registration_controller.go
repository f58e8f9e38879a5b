package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjidhub_backend/internals/features/registrations/dto"
	"masjidhub_backend/internals/features/registrations/model"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/mirror"
)

type RegistrationController struct {
	DB     *gorm.DB
	Mirror *mirror.Mirror
}

func NewRegistrationController(db *gorm.DB, m *mirror.Mirror) *RegistrationController {
	return &RegistrationController{DB: db, Mirror: m}
}

// 🟢 POST /api/public/registrations — form pendaftaran kegiatan
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kegiatan tidak valid")
	}
	activity, ok := ctrl.Mirror.FindActivity(activityID)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	row := model.ActivityRegistrationModel{
		RegistrationFullName:     req.FullName,
		RegistrationPhone:        req.Phone,
		RegistrationEmail:        req.Email,
		RegistrationActivityID:   activity.ID,
		RegistrationActivityName: activity.Name,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Printf("[ERROR] simpan pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", dto.ToRegistrationResponse(row))
}

// 🟢 GET /api/a/registrations?page=&per_page=&activity_id=
func (ctrl *RegistrationController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ActivityRegistrationModel{})
	if raw := c.Query("activity_id"); raw != "" {
		activityID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID kegiatan tidak valid")
		}
		q = q.Where("registration_activity_id = ?", activityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	var rows []model.ActivityRegistrationModel
	if err := q.
		Order("registration_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.JsonList(c, "Daftar pendaftaran",
		dto.ToRegistrationResponseList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/registrations/export — seluruh baris, urutan kronologis
func (ctrl *RegistrationController) Export(c *fiber.Ctx) error {
	var rows []model.ActivityRegistrationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("registration_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] export pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengekspor pendaftaran")
	}
	return helper.JsonOK(c, "Export pendaftaran", dto.ToRegistrationResponseList(rows))
}
