package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/price"
)

func newPriceRouter(t *testing.T) (http.Handler, *price.FakeRepository) {
	t.Helper()

	cardRepo := card.NewFakeRepository()
	cardRepo.SeedCard(domain.Card{ID: 1, Name: "Lightning Bolt"})
	cardRepo.SeedPrinting(domain.Printing{ID: 101, CardID: 1, SetCode: "LEA"})
	catalog := card.NewService(cardRepo)

	repo := price.NewFakeRepository()
	svc := price.NewService(repo, catalog)

	r := chi.NewRouter()
	r.Get("/prices/{printingId}/history", HandleGetPriceHistory(svc))
	return r, repo
}

func TestHandleGetPriceHistory(t *testing.T) {
	router, repo := newPriceRouter(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, repo.InsertPricePoint(context.Background(), domain.PricePoint{
		CardPrintingID: 101,
		PriceCents:     200,
		RecordedAt:     yesterday,
	}))

	rec := doJSON(router, "GET", "/prices/101/history?days=30", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	day := yesterday.Format("2006-01-02")
	assert.Equal(t, "{\"points\":[{\"d\":\""+day+"\",\"p\":2.00}]}\n", rec.Body.String())
}

func TestHandleGetPriceHistory_UnknownPrinting(t *testing.T) {
	router, _ := newPriceRouter(t)

	rec := doJSON(router, "GET", "/prices/999/history", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetPriceHistory_InvalidPrintingID(t *testing.T) {
	router, _ := newPriceRouter(t)

	rec := doJSON(router, "GET", "/prices/0/history", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetPriceHistory_InvalidDays(t *testing.T) {
	router, _ := newPriceRouter(t)

	rec := doJSON(router, "GET", "/prices/101/history?days=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
