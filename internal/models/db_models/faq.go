package db_models

type FAQ struct {
	BaseModel
	Category     string `gorm:"index"`
	Question     string `gorm:"not null"`
	Answer       string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"default:0"`
	IsActive     bool   `gorm:"default:true;index"`
}
