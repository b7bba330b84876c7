package db_models

type TeamMember struct {
	BaseModel
	Name         string `gorm:"not null"`
	Role         string
	Bio          string `gorm:"type:text"`
	ImageURL     string
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true;index"`
}
