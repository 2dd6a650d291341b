package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

func seededService(t *testing.T) (Service, *FakeRepository) {
	t.Helper()
	repo := NewFakeRepository()
	repo.SeedCard(domain.Card{ID: 1, Name: "Storm Dragon", Type: "creature"})
	repo.SeedCard(domain.Card{ID: 2, Name: "Quiet Meadow", Type: "land"})
	repo.SeedPrinting(domain.Printing{ID: 10, CardID: 1, SetCode: "ALP", CollectorNumber: "001", Rarity: "rare"})
	repo.SeedPrinting(domain.Printing{ID: 11, CardID: 1, SetCode: "BET", CollectorNumber: "014", Rarity: "rare"})
	return NewService(repo), repo
}

func TestSearchCards(t *testing.T) {
	svc, _ := seededService(t)

	all, err := svc.SearchCards(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.SearchCards(context.Background(), "  STORM ")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Storm Dragon", matched[0].Name)
}

func TestListPrintings(t *testing.T) {
	svc, _ := seededService(t)

	printings, err := svc.ListPrintings(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, printings, 2)

	_, err = svc.ListPrintings(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestPrintingExists_CachesAnswers(t *testing.T) {
	svc, repo := seededService(t)

	for i := 0; i < 3; i++ {
		exists, err := svc.PrintingExists(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, exists)
	}
	assert.Equal(t, 1, repo.ExistsCalls, "repeated checks should be served from cache")

	// Negative answers cache too
	for i := 0; i < 2; i++ {
		exists, err := svc.PrintingExists(context.Background(), 999)
		require.NoError(t, err)
		assert.False(t, exists)
	}
	assert.Equal(t, 2, repo.ExistsCalls)

	stats := svc.CacheStats()
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}
