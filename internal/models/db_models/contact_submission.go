package db_models

type ContactSubmission struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;index"`
	Phone   string
	Subject string
	Message string `gorm:"type:text;not null"`

	IsRead   bool   `gorm:"default:false;index"`
	Response string `gorm:"type:text"`
}
