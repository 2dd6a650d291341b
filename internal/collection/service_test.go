package collection

import (
	"context"
	"math"
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

func TestApplyDelta_CreatesRecordOnFirstAdjustment(t *testing.T) {
	svc, repo := newTestService(101)
	ctx := context.Background()

	rec, err := svc.ApplyDelta(ctx, "user-1", 101, 3, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, int32(3), rec.QuantityOwned)
	assert.Equal(t, int32(1), rec.QuantityWanted)
	assert.Equal(t, int32(0), rec.QuantityProxyOwned)

	stored, err := repo.GetRecord(ctx, "user-1", 101)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int32(3), stored.QuantityOwned)
}

func TestApplyDelta_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		seedOwned  int32
		deltaOwned int32
		wantOwned  int32
	}{
		{name: "negative delta floors at zero", seedOwned: 1, deltaOwned: -10, wantOwned: 0},
		{name: "positive delta saturates at MaxInt32", seedOwned: math.MaxInt32, deltaOwned: 10, wantOwned: math.MaxInt32},
		{name: "ordinary subtraction", seedOwned: 10, deltaOwned: -3, wantOwned: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(101)
			repo.Seed(domain.UserCardRecord{
				UserID:         "user-1",
				CardPrintingID: 101,
				QuantityOwned:  tt.seedOwned,
				QuantityWanted: 1,
			})

			rec, err := svc.ApplyDelta(context.Background(), "user-1", 101, tt.deltaOwned, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwned, rec.QuantityOwned)
		})
	}
}

func TestApplyDelta_UnknownPrinting(t *testing.T) {
	svc, _ := newTestService(101)

	_, err := svc.ApplyDelta(context.Background(), "user-1", 999, 1, 0, 0)
	assert.ErrorIs(t, err, domain.ErrPrintingNotFound)
}

func TestApplyDelta_AllZeroDeletesRecord(t *testing.T) {
	svc, repo := newTestService(101)
	ctx := context.Background()

	repo.Seed(domain.UserCardRecord{
		UserID:         "user-1",
		CardPrintingID: 101,
		QuantityOwned:  2,
	})

	_, err := svc.ApplyDelta(ctx, "user-1", 101, -2, 0, 0)
	require.NoError(t, err)

	stored, err := repo.GetRecord(ctx, "user-1", 101)
	require.NoError(t, err)
	assert.Nil(t, stored, "all-zero record should be removed")
}

func TestSetQuantities_Overwrites(t *testing.T) {
	svc, repo := newTestService(101)
	ctx := context.Background()

	repo.Seed(domain.UserCardRecord{
		UserID:         "user-1",
		CardPrintingID: 101,
		QuantityOwned:  9,
		QuantityWanted: 9,
	})

	rec, err := svc.SetQuantities(ctx, "user-1", 101, 4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(4), rec.QuantityOwned)
	assert.Equal(t, int32(0), rec.QuantityWanted)
	assert.Equal(t, int32(1), rec.QuantityProxyOwned)
}

func TestSetQuantities_AllZeroDeletes(t *testing.T) {
	svc, repo := newTestService(101)
	ctx := context.Background()

	repo.Seed(domain.UserCardRecord{UserID: "user-1", CardPrintingID: 101, QuantityOwned: 5})

	_, err := svc.SetQuantities(ctx, "user-1", 101, 0, 0, 0)
	require.NoError(t, err)

	stored, err := repo.GetRecord(ctx, "user-1", 101)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestQuickAdd_OnlyTouchesOwned(t *testing.T) {
	svc, _ := newTestService(101)
	ctx := context.Background()

	rec, err := svc.QuickAdd(ctx, "user-1", 101, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), rec.QuantityOwned)
	assert.Equal(t, int32(0), rec.QuantityWanted)

	rec, err = svc.QuickAdd(ctx, "user-1", 101, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(4), rec.QuantityOwned)
}

func TestBulkApply_AllOrNothing(t *testing.T) {
	svc, repo := newTestService(101, 102)
	ctx := context.Background()

	repo.Seed(domain.UserCardRecord{UserID: "user-1", CardPrintingID: 101, QuantityOwned: 1})

	_, err := svc.BulkApply(ctx, "user-1", []domain.BulkAdjustment{
		{CardPrintingID: 101, OwnedDelta: 5},
		{CardPrintingID: 999, OwnedDelta: 1},
	})
	require.ErrorIs(t, err, domain.ErrPrintingNotFound)

	// the valid item must not have been applied
	stored, err := repo.GetRecord(ctx, "user-1", 101)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int32(1), stored.QuantityOwned)
}

func TestBulkApply_AppliesEveryItem(t *testing.T) {
	svc, repo := newTestService(101, 102)
	ctx := context.Background()

	results, err := svc.BulkApply(ctx, "user-1", []domain.BulkAdjustment{
		{CardPrintingID: 101, OwnedDelta: 2},
		{CardPrintingID: 102, OwnedDelta: 1, ProxyDelta: 3},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	first, err := repo.GetRecord(ctx, "user-1", 101)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, int32(2), first.QuantityOwned)

	second, err := repo.GetRecord(ctx, "user-1", 102)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, int32(1), second.QuantityOwned)
	assert.Equal(t, int32(3), second.QuantityProxyOwned)
}

func TestGetCollection_ListsHoldings(t *testing.T) {
	svc, repo := newTestService(101)

	repo.Seed(domain.UserCardRecord{UserID: "user-1", CardPrintingID: 101, QuantityOwned: 1})
	repo.Seed(domain.UserCardRecord{UserID: "user-2", CardPrintingID: 101, QuantityOwned: 9})

	records, err := svc.GetCollection(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "user-1", records[0].UserID)
}
