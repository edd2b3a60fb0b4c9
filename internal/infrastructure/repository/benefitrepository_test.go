package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/domain/content"
)

func createTestBenefit(t *testing.T, repo *BenefitRepository, title string, order int) *content.Benefit {
	t.Helper()
	b, err := content.NewBenefit(title, "description", order)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBenefitRepository_CreateAndGet(t *testing.T) {
	repo := NewBenefitRepository(newTestDB(t))
	ctx := context.Background()

	created := createTestBenefit(t, repo, "Free lessons", 1)
	assert.NotZero(t, created.ID())

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Free lessons", found.Title())
	assert.True(t, found.IsActive())

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestBenefitRepository_ListActiveOrdersByDisplay(t *testing.T) {
	repo := NewBenefitRepository(newTestDB(t))
	ctx := context.Background()

	createTestBenefit(t, repo, "Second", 2)
	createTestBenefit(t, repo, "First", 1)
	hidden := createTestBenefit(t, repo, "Hidden", 0)
	hidden.Deactivate()
	require.NoError(t, repo.Update(ctx, hidden))

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title())
	assert.Equal(t, "Second", list[1].Title())
}

func TestBenefitRepository_SoftDeleteKeepsRow(t *testing.T) {
	repo := NewBenefitRepository(newTestDB(t))
	ctx := context.Background()

	b := createTestBenefit(t, repo, "Gone soon", 1)
	b.Deactivate()
	require.NoError(t, repo.Update(ctx, b))

	// The row survives for admin views; it just leaves public listings.
	found, err := repo.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}

func TestBenefitRepository_ListActiveByIDs(t *testing.T) {
	repo := NewBenefitRepository(newTestDB(t))
	ctx := context.Background()

	a := createTestBenefit(t, repo, "A", 1)
	createTestBenefit(t, repo, "B", 2)

	list, err := repo.ListActiveByIDs(ctx, []uint{a.ID()})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Title())

	empty, err := repo.ListActiveByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
