package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"masjidhub_backend/internals/configs"
	"masjidhub_backend/internals/features/admins/dto"
	"masjidhub_backend/internals/features/admins/service"
	helper "masjidhub_backend/internals/helpers"
)

type AuthController struct {
	Verifier service.CredentialVerifier
	Google   *service.GoogleTokenVerifier
}

func NewAuthController(verifier service.CredentialVerifier, google *service.GoogleTokenVerifier) *AuthController {
	return &AuthController{Verifier: verifier, Google: google}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	identity, err := ctrl.Verifier.Verify(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		log.Printf("[ERROR] verify credential: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return ctrl.issue(c, identity)
}

// 🟢 POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	if ctrl.Google == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Login Google tidak diaktifkan")
	}

	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	identity, err := ctrl.Google.VerifyIDToken(c.UserContext(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Google tidak terdaftar sebagai admin")
		}
		log.Printf("[ERROR] verify google token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return ctrl.issue(c, identity)
}

// 🟢 GET /api/a/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	identity, ok := c.Locals("admin_identity").(service.Identity)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "Admin aktif", dto.ToAdminResponse(identity))
}

func (ctrl *AuthController) issue(c *fiber.Ctx, identity service.Identity) error {
	token, err := service.IssueAdminToken(configs.JWTSecret, identity, service.AccessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(identity),
	})
}
