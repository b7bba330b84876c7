package request_models

import "github.com/google/uuid"

type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Category   string   `json:"category"`
	Author     string   `json:"author"`
	CoverImage string   `json:"cover_image"`

	IsPublished bool `json:"is_published"`
	IsFeatured  bool `json:"is_featured"`

	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    []string `json:"meta_keywords"`
}

type UpdatePostRequest struct {
	ID uuid.UUID `json:"-"`
	CreatePostRequest
}
