package request_models

import "github.com/google/uuid"

type UploadMediaRequest struct {
	FileName   string   `json:"file_name" binding:"required"`
	Base64Data string   `json:"base64_data" binding:"required"`
	MimeType   string   `json:"mime_type"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	AltText    string   `json:"alt_text"`
}

type UpdateMediaRequest struct {
	ID       uuid.UUID `json:"-"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	AltText  string    `json:"alt_text"`
}
