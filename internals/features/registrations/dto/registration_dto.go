package dto

import (
	"time"

	"masjidhub_backend/internals/features/registrations/model"
)

type RegistrationRequest struct {
	FullName   string `json:"full_name" validate:"required,min=3"`
	Phone      string `json:"phone" validate:"required,phone_id"`
	Email      string `json:"email" validate:"required,email"`
	ActivityID string `json:"activity_id" validate:"required,uuid"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	CreatedAt    string `json:"created_at"`
}

func ToRegistrationResponse(m model.ActivityRegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		ID:           m.RegistrationID.String(),
		FullName:     m.RegistrationFullName,
		Phone:        m.RegistrationPhone,
		Email:        m.RegistrationEmail,
		ActivityID:   m.RegistrationActivityID.String(),
		ActivityName: m.RegistrationActivityName,
		CreatedAt:    m.RegistrationCreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponseList(models []model.ActivityRegistrationModel) []RegistrationResponse {
	result := make([]RegistrationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, ToRegistrationResponse(m))
	}
	return result
}
