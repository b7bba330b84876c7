package request_models

type UpdateSettingsRequest struct {
	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`

	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`

	DefaultMetaTitle       string `json:"default_meta_title"`
	DefaultMetaDescription string `json:"default_meta_description"`
	GoogleAnalyticsID      string `json:"google_analytics_id"`
	FacebookPixelID        string `json:"facebook_pixel_id"`
}
