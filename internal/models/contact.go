package models

import "time"

// Contact is a business card captured from another profile, owned by a user.
type Contact struct {
	BaseModel

	UserID           uint       `gorm:"not null;index" json:"user_id"`
	ContactProfileID uint       `gorm:"not null;index" json:"contact_profile_id"`
	Category         string     `json:"category"`
	Notes            string     `json:"notes"`
	AddedAt          time.Time  `gorm:"not null" json:"added_at"`
	LastViewedAt     *time.Time `json:"last_viewed_at"`

	// Relationships
	User           User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	ContactProfile Profile `gorm:"foreignKey:ContactProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"contact_profile,omitempty"`
}
