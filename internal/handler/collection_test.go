package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/domain"
)

const testUserID = "33333333-3333-3333-3333-333333333333"

func newCollectionRouter(t *testing.T) (http.Handler, *collection.FakeRepository) {
	t.Helper()

	cardRepo := card.NewFakeRepository()
	cardRepo.SeedCard(domain.Card{ID: 1, Name: "Lightning Bolt"})
	cardRepo.SeedPrinting(domain.Printing{ID: 101, CardID: 1, SetCode: "LEA"})
	cardRepo.SeedPrinting(domain.Printing{ID: 102, CardID: 1, SetCode: "M10"})
	catalog := card.NewService(cardRepo)

	repo := collection.NewFakeRepository()
	svc := collection.NewService(repo, catalog)

	r := chi.NewRouter()
	r.Put("/collection/cards", HandleSetQuantities(svc))
	r.Post("/collection/cards/delta", HandleApplyDelta(svc))
	r.Post("/collection/cards/quick-add", HandleQuickAdd(svc))
	r.Post("/collection/cards/bulk", HandleBulkApply(svc))
	r.Get("/collection/cards", HandleGetCollection(svc))
	return r, repo
}

func doJSON(router http.Handler, method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSetQuantities(t *testing.T) {
	router, _ := newCollectionRouter(t)

	body := `{"cardPrintingId":101,"quantityOwned":4,"quantityWanted":2,"quantityProxyOwned":0}`
	rec := doJSON(router, "PUT", "/collection/cards", body, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.UserCardRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int32(4), record.QuantityOwned)
	assert.Equal(t, int32(2), record.QuantityWanted)
}

func TestHandleSetQuantities_MissingUserHeader(t *testing.T) {
	router, _ := newCollectionRouter(t)

	rec := doJSON(router, "PUT", "/collection/cards", `{"cardPrintingId":101,"quantityOwned":1}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgMissingUserHeader)
}

func TestHandleSetQuantities_NegativeQuantityRejected(t *testing.T) {
	router, _ := newCollectionRouter(t)

	body := `{"cardPrintingId":101,"quantityOwned":-1}`
	rec := doJSON(router, "PUT", "/collection/cards", body, testUserID)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "quantityowned")
}

func TestHandleApplyDelta_FloorsAtZero(t *testing.T) {
	router, repo := newCollectionRouter(t)
	repo.Seed(domain.UserCardRecord{
		UserID:         testUserID,
		CardPrintingID: 101,
		QuantityOwned:  1,
		QuantityWanted: 3,
	})

	body := `{"cardPrintingId":101,"deltaOwned":-10}`
	rec := doJSON(router, "POST", "/collection/cards/delta", body, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.UserCardRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, int32(0), record.QuantityOwned)
	assert.Equal(t, int32(3), record.QuantityWanted)
}

func TestHandleApplyDelta_UnknownPrinting(t *testing.T) {
	router, _ := newCollectionRouter(t)

	rec := doJSON(router, "POST", "/collection/cards/delta", `{"cardPrintingId":999,"deltaOwned":1}`, testUserID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleApplyDelta_UnknownUserReturnsNotFound(t *testing.T) {
	router, repo := newCollectionRouter(t)
	repo.UpsertErr = domain.ErrUserNotFound

	rec := doJSON(router, "POST", "/collection/cards/delta", `{"cardPrintingId":101,"deltaOwned":1}`, testUserID)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgUserNotFoundError, resp.Error)
}

func TestHandleQuickAdd(t *testing.T) {
	router, _ := newCollectionRouter(t)

	rec := doJSON(router, "POST", "/collection/cards/quick-add", `{"printingId":101,"quantity":3}`, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"printingId":101,"quantityOwned":3}`, rec.Body.String())
}

func TestHandleBulkApply(t *testing.T) {
	router, _ := newCollectionRouter(t)

	body := `{"items":[{"printingId":101,"ownedDelta":2},{"printingId":102,"ownedDelta":1,"proxyDelta":4}]}`
	rec := doJSON(router, "POST", "/collection/cards/bulk", body, testUserID)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BulkApplyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, int32(4), resp.Records[1].QuantityProxyOwned)
}

func TestHandleBulkApply_EmptyItems(t *testing.T) {
	router, _ := newCollectionRouter(t)

	rec := doJSON(router, "POST", "/collection/cards/bulk", `{"items":[]}`, testUserID)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetCollection_EmptyIsJSONArray(t *testing.T) {
	router, _ := newCollectionRouter(t)

	rec := doJSON(router, "GET", "/collection/cards", "", testUserID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
