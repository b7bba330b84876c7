package response_models

type PostSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Category   string `json:"category"`
	Author     string `json:"author,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
	IsFeatured bool   `json:"is_featured"`
	ViewCount  int    `json:"view_count"`
	CreatedAt  int64  `json:"created_at"`
}

type PostDetail struct {
	PostSummary
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}
