package request_models

type OptimizeSeoRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ContentType string `json:"content_type"`
	Region      string `json:"region"`
}
