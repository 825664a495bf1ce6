package models

type SocialLink struct {
	BaseModel

	ProfileID uint   `gorm:"not null;index" json:"profile_id"`
	Platform  string `gorm:"not null" json:"platform"`
	Username  string `json:"username"`
	URL       string `gorm:"not null" json:"url"`
	IconName  string `json:"icon_name"`
	Order     int    `gorm:"default:0" json:"order"`
	Category  string `gorm:"not null;default:social;index" json:"category"` // "social" or "knowledge"
	IsVisible bool   `gorm:"default:true" json:"is_visible"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
