package dto

import (
	"masjidhub_backend/internals/features/admins/service"
)

// 🔹 Request login admin
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// 🔹 Request login via Google ID token
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🔹 Response identitas admin yang sedang login
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// 🔄 Konversi identity → response
func ToAdminResponse(id service.Identity) AdminResponse {
	return AdminResponse{
		ID:       id.ID.String(),
		Username: id.Username,
		Role:     id.Role,
	}
}
