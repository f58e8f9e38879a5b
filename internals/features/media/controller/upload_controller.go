package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/constants"
	"masjidhub_backend/internals/features/media/dto"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/helpers/oss"
)

type UploadController struct {
	Gatekeeper *oss.Gatekeeper
}

func NewUploadController(g *oss.Gatekeeper) *UploadController {
	return &UploadController{Gatekeeper: g}
}

// 🟢 POST /api/a/uploads (multipart: file, bucket opsional)
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	fh := formFile(c)
	bucket := strings.TrimSpace(c.FormValue("bucket"))

	url, err := ctrl.Gatekeeper.Upload(c.UserContext(), fh, bucket)
	if err != nil {
		return uploadError(c, err)
	}
	return helper.JsonCreated(c, "File berhasil diunggah", dto.UploadResponse{URL: url})
}

// 🟢 POST /api/a/uploads/image — recompress ke webp, bucket foto
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	url, err := ctrl.Gatekeeper.UploadImageAsWebP(c.UserContext(), formFile(c), constants.BucketPhotos)
	if err != nil {
		return uploadError(c, err)
	}
	return helper.JsonCreated(c, "Foto berhasil diunggah", dto.UploadResponse{URL: url})
}

// 🟢 POST /api/a/uploads/video — kebijakan bucket video (500 MB, MIME terbatas)
func (ctrl *UploadController) UploadVideo(c *fiber.Ctx) error {
	url, err := ctrl.Gatekeeper.Upload(c.UserContext(), formFile(c), constants.BucketVideos)
	if err != nil {
		return uploadError(c, err)
	}
	return helper.JsonCreated(c, "Video berhasil diunggah", dto.UploadResponse{URL: url})
}

// 🟢 POST /api/a/uploads/video-thumbnail — poster kecil untuk galeri video
func (ctrl *UploadController) UploadVideoThumbnail(c *fiber.Ctx) error {
	url, err := ctrl.Gatekeeper.UploadThumbnailWebP(c.UserContext(), formFile(c), constants.BucketPhotos)
	if err != nil {
		return uploadError(c, err)
	}
	return helper.JsonCreated(c, "Thumbnail berhasil dibuat", dto.UploadResponse{URL: url})
}

func formFile(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil // gatekeeper yang memutuskan ErrMissingFile
	}
	return fh
}

// uploadError memetakan taksonomi error gatekeeper ke status HTTP.
func uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, oss.ErrMissingFile):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, oss.ErrOversizeFile):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, oss.ErrUnsupportedType):
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, oss.ErrBucketMissing):
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	case errors.Is(err, oss.ErrPermissionDenied):
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	case errors.Is(err, oss.ErrStorageUnavailable):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload gagal")
	}
}
