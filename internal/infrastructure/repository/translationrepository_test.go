package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/domain/translation"
)

func upsertTestTranslation(t *testing.T, repo *TranslationRepository, key, lang, text string) {
	t.Helper()
	tr, err := translation.NewTranslation(key, lang, text)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), tr))
}

func TestTranslationRepository_UpsertReplacesText(t *testing.T) {
	repo := NewTranslationRepository(newTestDB(t))
	ctx := context.Background()

	upsertTestTranslation(t, repo, "hero.title", "en", "Learn anywhere")
	upsertTestTranslation(t, repo, "hero.title", "en", "Learn everywhere")

	list, err := repo.ListByLanguage(ctx, "en")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Learn everywhere", list[0].Text())
}

func TestTranslationRepository_ListByLanguage(t *testing.T) {
	repo := NewTranslationRepository(newTestDB(t))
	ctx := context.Background()

	upsertTestTranslation(t, repo, "hero.title", "en", "Learn anywhere")
	upsertTestTranslation(t, repo, "hero.subtitle", "en", "Free forever")
	upsertTestTranslation(t, repo, "hero.title", "uz", "Istalgan joyda o'rganing")

	en, err := repo.ListByLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, en, 2)

	uz, err := repo.ListByLanguage(ctx, "uz")
	require.NoError(t, err)
	assert.Len(t, uz, 1)

	langs, err := repo.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "uz"}, langs)
}

func TestTranslationRepository_Delete(t *testing.T) {
	repo := NewTranslationRepository(newTestDB(t))
	ctx := context.Background()

	upsertTestTranslation(t, repo, "hero.title", "en", "Learn anywhere")

	require.NoError(t, repo.Delete(ctx, "hero.title", "en"))
	assert.ErrorIs(t, repo.Delete(ctx, "hero.title", "en"), translation.ErrNotFound)

	list, err := repo.ListByLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Empty(t, list)
}
