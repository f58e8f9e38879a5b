package dto

import (
	"github.com/google/uuid"

	"masjidhub_backend/internals/mirror"
)

type ActivityRequest struct {
	Date        string `json:"date" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=kajian sosial pendidikan ibadah lainnya"`
	ImageURL    string `json:"image_url"`
}

type ActivityResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (r *ActivityRequest) ToRecord(id uuid.UUID) mirror.Activity {
	return mirror.Activity{
		ID:          id,
		Date:        r.Date,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
	}
}

func ToActivityResponse(m mirror.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          m.ID.String(),
		Date:        m.Date,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
	}
}

func ToActivityResponseList(records []mirror.Activity) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToActivityResponse(m))
	}
	return result
}
