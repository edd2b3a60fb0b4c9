package translation

import (
	"context"
	"errors"
)

var (
	ErrKeyRequired           = errors.New("translation key is required")
	ErrTextRequired          = errors.New("translated text is required")
	ErrInvalidLanguage       = errors.New("invalid language code")
	ErrInvalidTranslationRow = errors.New("invalid translation row")
	ErrNotFound              = errors.New("translation not found")
)

// Repository is the persistence port for translations.
type Repository interface {
	// Upsert creates the (key, language) pair or replaces its text.
	Upsert(ctx context.Context, tr *Translation) error

	// Delete removes one (key, language) pair.
	Delete(ctx context.Context, key, languageCode string) error

	// ListByLanguage returns every translation for one language code.
	ListByLanguage(ctx context.Context, languageCode string) ([]*Translation, error)

	// ListLanguages returns the distinct language codes present.
	ListLanguages(ctx context.Context) ([]string, error)
}
