package models

import (
	"gorm.io/datatypes"
)

// BackgroundGradient is stored as a jsonb column on Profile.
type BackgroundGradient struct {
	ColorFrom string `json:"colorFrom"`
	ColorTo   string `json:"colorTo"`
	Direction string `json:"direction"`
}

type Profile struct {
	BaseModel

	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`

	Email string `json:"email"`
	Phone string `json:"phone"`
	CVUrl string `json:"cv_url"`

	ImageURL           string         `json:"image_url"`
	ImageIndex         int            `gorm:"default:0" json:"image_index"`
	BackgroundIndex    int            `gorm:"default:0" json:"background_index"`
	BackgroundGradient datatypes.JSON `gorm:"type:jsonb" json:"background_gradient"`

	GithubUsername  string `json:"github_username"`
	TryHackMeUserID string `json:"tryhackme_user_id"`

	ShowImage        bool `gorm:"default:true" json:"show_image"`
	ShowContact      bool `gorm:"default:true" json:"show_contact"`
	ShowSocial       bool `gorm:"default:true" json:"show_social"`
	ShowKnowledge    bool `gorm:"default:true" json:"show_knowledge"`
	ShowFeatured     bool `gorm:"default:true" json:"show_featured"`
	ShowTechnologies bool `gorm:"default:true" json:"show_technologies"`
	ShowGithubStats  bool `gorm:"default:false" json:"show_github_stats"`
	ShowTryHackMe    bool `gorm:"default:false" json:"show_tryhackme"`

	// Ordered list of section identifiers, stored as jsonb.
	SectionOrder datatypes.JSON `gorm:"type:jsonb" json:"section_order"`

	// Relationships
	User             User              `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	SocialLinks      []SocialLink      `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"social_links,omitempty"`
	FeaturedContents []FeaturedContent `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"featured_contents,omitempty"`
	Technologies     []Technology      `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"technologies,omitempty"`
	Issues           []Issue           `gorm:"foreignKey:ProfileID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
