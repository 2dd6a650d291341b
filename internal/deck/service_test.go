package deck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

type stubCatalog struct {
	known map[int]bool
}

func (s *stubCatalog) PrintingExists(_ context.Context, printingID int) (bool, error) {
	return s.known[printingID], nil
}

func newTestService(known ...int) (Service, *FakeRepository) {
	repo := NewFakeRepository()
	catalog := &stubCatalog{known: make(map[int]bool)}
	for _, id := range known {
		catalog.known[id] = true
	}
	return NewService(repo, catalog), repo
}

func TestCreateDeck(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	deck, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "standard", "fast")
	require.NoError(t, err)
	assert.NotZero(t, deck.ID)
	assert.Equal(t, "user-1", deck.UserID)
	assert.Equal(t, "Mono Red", deck.Name)
}

func TestCreateDeck_EmptyName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateDeck(context.Background(), "user-1", "   ", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetDeck_Ownership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "", "")
	require.NoError(t, err)

	_, err = svc.GetDeck(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotDeckOwner)

	deck, err := svc.GetDeck(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deck.ID)
}

func TestGetDeck_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetDeck(context.Background(), "user-1", 42)
	assert.ErrorIs(t, err, domain.ErrDeckNotFound)
}

func TestUpdateDeck(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "standard", "")
	require.NoError(t, err)

	updated, err := svc.UpdateDeck(ctx, "user-1", created.ID, "Rakdos", "modern", "midrange")
	require.NoError(t, err)
	assert.Equal(t, "Rakdos", updated.Name)
	assert.Equal(t, "modern", updated.Format)

	_, err = svc.UpdateDeck(ctx, "user-2", created.ID, "Stolen", "", "")
	assert.ErrorIs(t, err, domain.ErrNotDeckOwner)
}

func TestDeleteDeck(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "", "")
	require.NoError(t, err)

	err = svc.DeleteDeck(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotDeckOwner)

	require.NoError(t, svc.DeleteDeck(ctx, "user-1", created.ID))
	stored, err := repo.GetDeckByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSetDeckCards(t *testing.T) {
	svc, _ := newTestService(101, 102)
	ctx := context.Background()

	created, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "", "")
	require.NoError(t, err)

	deck, err := svc.SetDeckCards(ctx, "user-1", created.ID, []domain.DeckCard{
		{CardPrintingID: 101, Quantity: 4},
		{CardPrintingID: 102, Quantity: -2}, // clamps to zero and drops out
	})
	require.NoError(t, err)
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, 101, deck.Cards[0].CardPrintingID)
	assert.Equal(t, int32(4), deck.Cards[0].Quantity)
}

func TestSetDeckCards_UnknownPrinting(t *testing.T) {
	svc, _ := newTestService(101)
	ctx := context.Background()

	created, err := svc.CreateDeck(ctx, "user-1", "Mono Red", "", "")
	require.NoError(t, err)

	_, err = svc.SetDeckCards(ctx, "user-1", created.ID, []domain.DeckCard{{CardPrintingID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrPrintingNotFound)
}
