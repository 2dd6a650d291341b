package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/wishlist"
)

func newWishlistRouter(t *testing.T) (http.Handler, *collection.FakeRepository) {
	t.Helper()

	cardRepo := card.NewFakeRepository()
	cardRepo.SeedCard(domain.Card{ID: 1, Name: "Lightning Bolt"})
	cardRepo.SeedPrinting(domain.Printing{ID: 101, CardID: 1, SetCode: "LEA"})
	catalog := card.NewService(cardRepo)

	repo := collection.NewFakeRepository()
	svc := wishlist.NewService(repo, catalog)

	r := chi.NewRouter()
	r.Put("/wishlist/cards", HandleSetWanted(svc))
	r.Post("/wishlist/cards/delta", HandleWantedDelta(svc))
	r.Post("/wishlist/cards/quick-add", HandleWishlistQuickAdd(svc))
	r.Post("/wishlist/cards/move-to-collection", HandleMoveToCollection(svc))
	r.Get("/wishlist/cards", HandleGetWishlist(svc))
	return r, repo
}

func TestHandleSetWanted(t *testing.T) {
	router, _ := newWishlistRouter(t)

	rec := doJSON(router, "PUT", "/wishlist/cards", `{"cardPrintingId":101,"quantityWanted":5}`, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.UserCardRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int32(5), record.QuantityWanted)
}

func TestHandleWishlistQuickAdd(t *testing.T) {
	router, _ := newWishlistRouter(t)

	rec := doJSON(router, "POST", "/wishlist/cards/quick-add", `{"printingId":101,"quantity":2}`, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"printingId":101,"quantityWanted":2}`, rec.Body.String())
}

func TestHandleMoveToCollection(t *testing.T) {
	router, repo := newWishlistRouter(t)
	repo.Seed(domain.UserCardRecord{
		UserID:         testUserID,
		CardPrintingID: 101,
		QuantityOwned:  5,
		QuantityWanted: 10,
	})

	body := `{"cardPrintingId":101,"quantity":3,"useProxy":false}`
	rec := doJSON(router, "POST", "/wishlist/cards/move-to-collection", body, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"printingId": 101,
		"wantedAfter": 7,
		"ownedAfter": 8,
		"proxyAfter": 0,
		"availability": 8,
		"availabilityWithProxies": 8
	}`, rec.Body.String())
}

func TestHandleMoveToCollection_ProxyOverWanted(t *testing.T) {
	router, repo := newWishlistRouter(t)
	repo.Seed(domain.UserCardRecord{
		UserID:         testUserID,
		CardPrintingID: 101,
		QuantityWanted: 2,
	})

	body := `{"cardPrintingId":101,"quantity":5,"useProxy":true}`
	rec := doJSON(router, "POST", "/wishlist/cards/move-to-collection", body, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.MoveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int32(0), result.WantedAfter)
	assert.Equal(t, int32(5), result.ProxyAfter)
	assert.Equal(t, int64(5), result.AvailabilityWithProxies)
}

func TestHandleMoveToCollection_ZeroQuantityRejected(t *testing.T) {
	router, _ := newWishlistRouter(t)

	rec := doJSON(router, "POST", "/wishlist/cards/move-to-collection", `{"cardPrintingId":101,"quantity":0}`, testUserID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetWishlist_OmitsPureCollectionRecords(t *testing.T) {
	router, repo := newWishlistRouter(t)
	repo.Seed(domain.UserCardRecord{UserID: testUserID, CardPrintingID: 101, QuantityOwned: 4})

	rec := doJSON(router, "GET", "/wishlist/cards", "", testUserID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
