package models

import "time"

// TranslationModel represents the database persistence model for UI string
// translations. One row per (key, language) pair.
type TranslationModel struct {
	ID           uint   `gorm:"primarykey"`
	Key          string `gorm:"size:255;not null;uniqueIndex:idx_translations_key_lang,priority:1"`
	LanguageCode string `gorm:"size:35;not null;uniqueIndex:idx_translations_key_lang,priority:2;index"`
	Text         string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TranslationModel) TableName() string {
	return "translations"
}
