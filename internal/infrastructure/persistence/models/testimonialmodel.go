package models

import "time"

// TestimonialModel represents the database persistence model for testimonials.
type TestimonialModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:255;not null"`
	Comment      string `gorm:"type:text;not null"`
	AvatarURL    string `gorm:"size:512"`
	Rating       int    `gorm:"not null;default:5"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}
