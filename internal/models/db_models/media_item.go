package db_models

import "gorm.io/datatypes"

// MediaItem is the library row for an uploaded file; the binary itself
// lives in the external object store and is reachable via URL.
type MediaItem struct {
	BaseModel
	FileName string `gorm:"not null"`
	URL      string `gorm:"not null"`
	MimeType string
	SizeBytes int64
	Width     int
	Height    int
	Category  string         `gorm:"index"`
	Tags      datatypes.JSON `gorm:"type:jsonb"`
	AltText   string
}
