// Package translation provides the domain model for UI string translations.
// Each row is one (key, language) pair; the application layer serves whole
// per-language bundles with a cache in front.
package translation

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Translation is a single translated UI string.
type Translation struct {
	id           uint
	key          string
	languageCode string
	text         string
	updatedAt    time.Time
}

// NewTranslation creates a translation. The language code is normalized to
// its canonical BCP-47 form (e.g. "UZ-latn" becomes "uz-Latn").
func NewTranslation(key, languageCode, text string) (*Translation, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrKeyRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	normalized, err := NormalizeLanguage(languageCode)
	if err != nil {
		return nil, err
	}

	return &Translation{
		key:          key,
		languageCode: normalized,
		text:         text,
		updatedAt:    time.Now().UTC(),
	}, nil
}

// ReconstructTranslation rebuilds a translation from persistence.
func ReconstructTranslation(id uint, key, languageCode, text string, updatedAt time.Time) (*Translation, error) {
	if id == 0 || key == "" || languageCode == "" {
		return nil, ErrInvalidTranslationRow
	}

	return &Translation{
		id:           id,
		key:          key,
		languageCode: languageCode,
		text:         text,
		updatedAt:    updatedAt,
	}, nil
}

// SetText updates the translated text.
func (t *Translation) SetText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	t.text = text
	t.updatedAt = time.Now().UTC()
	return nil
}

// SetID sets the row ID (only for persistence layer use)
func (t *Translation) SetID(id uint) error {
	if t.id != 0 {
		return ErrInvalidTranslationRow
	}
	t.id = id
	return nil
}

func (t *Translation) ID() uint             { return t.id }
func (t *Translation) Key() string          { return t.key }
func (t *Translation) LanguageCode() string { return t.languageCode }
func (t *Translation) Text() string         { return t.text }
func (t *Translation) UpdatedAt() time.Time { return t.updatedAt }

// NormalizeLanguage canonicalizes a BCP-47 language code.
func NormalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", ErrInvalidLanguage
	}
	return tag.String(), nil
}
