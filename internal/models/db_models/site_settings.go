package db_models

// SiteSettings is a singleton row; the repository always reads and
// updates the first record.
type SiteSettings struct {
	BaseModel
	SiteName    string
	Tagline     string
	ContactEmail string
	ContactPhone string
	Address      string

	FacebookURL  string
	InstagramURL string
	YoutubeURL   string

	DefaultMetaTitle       string
	DefaultMetaDescription string
	GoogleAnalyticsID      string
	FacebookPixelID        string
}
