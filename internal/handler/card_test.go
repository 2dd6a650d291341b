package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/domain"
)

func TestHandleCacheStats(t *testing.T) {
	repo := card.NewFakeRepository()
	repo.SeedCard(domain.Card{ID: 1, Name: "Lightning Bolt"})
	repo.SeedPrinting(domain.Printing{ID: 101, CardID: 1, SetCode: "LEA"})
	svc := card.NewService(repo)

	// One miss (first lookup) then one hit (cached answer).
	_, err := svc.PrintingExists(context.Background(), 101)
	require.NoError(t, err)
	_, err = svc.PrintingExists(context.Background(), 101)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/admin/cache-stats", HandleCacheStats(svc))

	req := httptest.NewRequest("GET", "/admin/cache-stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats card.CacheStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}
