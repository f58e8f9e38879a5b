package dto

import (
	"github.com/google/uuid"

	"masjidhub_backend/internals/mirror"
)

// 🔹 Request pengurus (tanpa id; id di-generate mirror saat add)
type LeadershipRequest struct {
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Education string `json:"education"`
	ImageURL  string `json:"image_url"`
}

type LeadershipResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Education string `json:"education"`
	ImageURL  string `json:"image_url"`
}

// 🔄 Konversi dari request → record mirror
func (r *LeadershipRequest) ToRecord(id uuid.UUID) mirror.LeadershipMember {
	return mirror.LeadershipMember{
		ID:        id,
		Name:      r.Name,
		Position:  r.Position,
		Education: r.Education,
		ImageURL:  r.ImageURL,
	}
}

func ToLeadershipResponse(m mirror.LeadershipMember) LeadershipResponse {
	return LeadershipResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Position:  m.Position,
		Education: m.Education,
		ImageURL:  m.ImageURL,
	}
}

func ToLeadershipResponseList(records []mirror.LeadershipMember) []LeadershipResponse {
	result := make([]LeadershipResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToLeadershipResponse(m))
	}
	return result
}
