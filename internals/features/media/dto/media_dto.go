package dto

import (
	"github.com/google/uuid"

	"masjidhub_backend/internals/mirror"
)

/* =======================================================================
   Photo
======================================================================= */

type PhotoRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Category    string `json:"category"`
}

type PhotoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

func (r *PhotoRequest) ToRecord(id uuid.UUID) mirror.Photo {
	return mirror.Photo{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}
}

func ToPhotoResponse(m mirror.Photo) PhotoResponse {
	return PhotoResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
	}
}

func ToPhotoResponseList(records []mirror.Photo) []PhotoResponse {
	result := make([]PhotoResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToPhotoResponse(m))
	}
	return result
}

/* =======================================================================
   Video
======================================================================= */

type VideoRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type VideoResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (r *VideoRequest) ToRecord(id uuid.UUID) mirror.Video {
	return mirror.Video{
		ID:           id,
		Name:         r.Name,
		Description:  r.Description,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
	}
}

func ToVideoResponse(m mirror.Video) VideoResponse {
	return VideoResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
	}
}

func ToVideoResponseList(records []mirror.Video) []VideoResponse {
	result := make([]VideoResponse, 0, len(records))
	for _, m := range records {
		result = append(result, ToVideoResponse(m))
	}
	return result
}

/* =======================================================================
   Upload
======================================================================= */

type UploadResponse struct {
	URL string `json:"url"`
}
