package response_models

type MediaItemResponse struct {
	ID        string   `json:"id"`
	FileName  string   `json:"file_name"`
	URL       string   `json:"url"`
	MimeType  string   `json:"mime_type,omitempty"`
	SizeBytes int64    `json:"size_bytes,omitempty"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	AltText   string   `json:"alt_text,omitempty"`
	CreatedAt int64    `json:"created_at"`
}
