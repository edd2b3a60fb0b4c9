package models

import "time"

// BenefitModel represents the database persistence model for benefits.
type BenefitModel struct {
	ID           uint   `gorm:"primarykey"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (BenefitModel) TableName() string {
	return "benefits"
}
