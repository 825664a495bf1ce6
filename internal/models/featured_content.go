package models

type FeaturedContent struct {
	BaseModel

	ProfileID uint   `gorm:"not null;index" json:"profile_id"`
	Title     string `gorm:"not null" json:"title"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	Order     int    `gorm:"default:0" json:"order"`
	IsVisible bool   `gorm:"default:true" json:"is_visible"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
