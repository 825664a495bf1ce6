package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is gorm.Model with JSON-friendly field tags for API responses.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
