package models

import "time"

// SupportLogoModel represents the database persistence model for partner
// support logos.
type SupportLogoModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:255;not null"`
	ImageURL     string `gorm:"size:512;not null"`
	WebsiteURL   string `gorm:"size:512"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SupportLogoModel) TableName() string {
	return "support_logos"
}
