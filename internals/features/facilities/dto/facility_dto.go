package dto

import (
	"github.com/google/uuid"

	"masjidhub_backend/internals/mirror"
)

type FacilityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url"`
}

type FacilityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r *FacilityRequest) ToRecord(id uuid.UUID) mirror.Facility {
	return mirror.Facility{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

func ToFacilityResponse(m mirror.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

func ToFacilityResponseList(records []mirror.Facility) []FacilityResponse {
	result := make([]FacilityResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToFacilityResponse(m))
	}
	return result
}
