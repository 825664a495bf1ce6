package models

type Technology struct {
	BaseModel

	ProfileID         uint   `gorm:"not null;index" json:"profile_id"`
	Name              string `gorm:"not null" json:"name"`
	LogoURL           string `json:"logo_url"`
	Category          string `gorm:"not null;index" json:"category"`
	ProficiencyLevel  int    `gorm:"default:0" json:"proficiency_level"` // 0-100
	YearsOfExperience int    `gorm:"default:0" json:"years_of_experience"`
	IsVisible         bool   `gorm:"default:true" json:"is_visible"`
	Order             int    `gorm:"default:0" json:"order"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
