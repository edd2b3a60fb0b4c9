package models

import "time"

// FAQModel represents the database persistence model for FAQ entries.
// Answer holds the raw markdown source; rendering happens at the
// application layer.
type FAQModel struct {
	ID           uint   `gorm:"primarykey"`
	Question     string `gorm:"size:512;not null"`
	Answer       string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (FAQModel) TableName() string {
	return "faqs"
}
