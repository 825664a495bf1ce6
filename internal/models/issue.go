package models

import "time"

type Issue struct {
	BaseModel

	ProfileID   uint       `gorm:"not null;index" json:"profile_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Severity    string     `gorm:"not null;default:low" json:"severity"` // low, medium, high, critical
	Status      string     `gorm:"not null;default:open" json:"status"`  // open, in_progress, resolved
	IsResolved  bool       `gorm:"default:false" json:"is_resolved"`
	ResolvedAt  *time.Time `json:"resolved_at"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
