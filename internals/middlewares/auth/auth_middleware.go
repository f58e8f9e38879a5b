package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidhub_backend/internals/configs"
	adminModel "masjidhub_backend/internals/features/admins/model"
	adminService "masjidhub_backend/internals/features/admins/service"
)

// AdminAuth melindungi group /api/a: Bearer JWT valid + admin masih aktif.
func AdminAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		identity, err := adminService.ParseAdminToken(configs.JWTSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid")
		}

		// pastikan akun belum dinonaktifkan sejak token terbit
		var admin adminModel.AdminUserModel
		err = db.Where("admin_user_id = ?", identity.ID).First(&admin).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !admin.AdminUserIsActive {
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals("admin_identity", identity)
		c.Locals("admin_id", identity.ID.String())
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader == "" {
		// fallback cookie untuk admin console
		if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
			return cookie, nil
		}
		return "", errors.New("Authorization header kosong")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("format Authorization harus 'Bearer <token>'")
	}
	return strings.TrimSpace(parts[1]), nil
}
