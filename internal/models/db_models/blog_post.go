package db_models

import "github.com/lib/pq"

type BlogPost struct {
	BaseModel
	Title    string `gorm:"not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Content  string `gorm:"type:text"`
	Excerpt  string `gorm:"type:text"`
	Category string `gorm:"index"`
	Author   string
	CoverImage string

	IsPublished bool `gorm:"index"`
	IsFeatured  bool
	ViewCount   int `gorm:"default:0"`

	MetaTitle       string
	MetaDescription string
	MetaKeywords    pq.StringArray `gorm:"type:text[]"`
}
