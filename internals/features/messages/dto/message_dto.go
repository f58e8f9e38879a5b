package dto

import (
	"time"

	"masjidhub_backend/internals/mirror"
)

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ContactMessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func (r *ContactMessageRequest) ToRecord() mirror.ContactMessage {
	return mirror.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

func ToContactMessageResponse(m mirror.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func ToContactMessageResponseList(records []mirror.ContactMessage) []ContactMessageResponse {
	result := make([]ContactMessageResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToContactMessageResponse(m))
	}
	return result
}
