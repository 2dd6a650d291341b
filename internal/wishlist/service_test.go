package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/domain"
)

type stubCatalog struct {
	known map[int]bool
}

func (s *stubCatalog) PrintingExists(_ context.Context, printingID int) (bool, error) {
	return s.known[printingID], nil
}

func newTestService(known ...int) (Service, *collection.FakeRepository) {
	repo := collection.NewFakeRepository()
	catalog := &stubCatalog{known: make(map[int]bool)}
	for _, id := range known {
		catalog.known[id] = true
	}
	return NewService(repo, catalog), repo
}

func TestSetWanted_Overwrites(t *testing.T) {
	svc, repo := newTestService(101)
	ctx := context.Background()

	repo.Seed(domain.UserCardRecord{
		UserID:         "user-1",
		CardPrintingID: 101,
		QuantityOwned:  2,
		QuantityWanted: 9,
	})

	rec, err := svc.SetWanted(ctx, "user-1", 101, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(4), rec.QuantityWanted)
	assert.Equal(t, int32(2), rec.QuantityOwned, "owned counter untouched")
}

func TestApplyWantedDelta_FloorsAtZero(t *testing.T) {
	svc, _ := newTestService(101)
	ctx := context.Background()

	rec, err := svc.QuickAdd(ctx, "user-1", 101, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), rec.QuantityWanted)

	rec, err = svc.ApplyWantedDelta(ctx, "user-1", 101, -5)
	require.NoError(t, err)
	assert.Equal(t, int32(0), rec.QuantityWanted)
}

func TestApplyWantedDelta_UnknownPrinting(t *testing.T) {
	svc, _ := newTestService(101)

	_, err := svc.ApplyWantedDelta(context.Background(), "user-1", 999, 1)
	assert.ErrorIs(t, err, domain.ErrPrintingNotFound)
}

func TestMoveToCollection(t *testing.T) {
	tests := []struct {
		name     string
		seed     domain.UserCardRecord
		quantity int32
		useProxy bool
		want     domain.MoveResult
	}{
		{
			name:     "moves into owned",
			seed:     domain.UserCardRecord{QuantityOwned: 5, QuantityWanted: 10},
			quantity: 3,
			want: domain.MoveResult{
				CardPrintingID:          101,
				WantedAfter:             7,
				OwnedAfter:              8,
				ProxyAfter:              0,
				Availability:            8,
				AvailabilityWithProxies: 8,
			},
		},
		{
			name:     "moving more than wanted clears the want",
			seed:     domain.UserCardRecord{QuantityWanted: 2},
			quantity: 5,
			useProxy: true,
			want: domain.MoveResult{
				CardPrintingID:          101,
				WantedAfter:             0,
				OwnedAfter:              0,
				ProxyAfter:              5,
				Availability:            0,
				AvailabilityWithProxies: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(101)
			seed := tt.seed
			seed.UserID = "user-1"
			seed.CardPrintingID = 101
			repo.Seed(seed)

			result, err := svc.MoveToCollection(context.Background(), "user-1", 101, tt.quantity, tt.useProxy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *result)
		})
	}
}

func TestMoveToCollection_NegativeQuantity(t *testing.T) {
	svc, _ := newTestService(101)

	_, err := svc.MoveToCollection(context.Background(), "user-1", 101, -1, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetWishlist_OnlyWantedRecords(t *testing.T) {
	svc, repo := newTestService(101)

	repo.Seed(domain.UserCardRecord{UserID: "user-1", CardPrintingID: 101, QuantityWanted: 2})
	repo.Seed(domain.UserCardRecord{UserID: "user-1", CardPrintingID: 102, QuantityOwned: 4})

	records, err := svc.GetWishlist(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 101, records[0].CardPrintingID)
}
