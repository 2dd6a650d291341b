package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/deck"
	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/importsource"
	"github.com/osse101/CardBinder_Go/internal/price"
	"github.com/osse101/CardBinder_Go/internal/user"
	"github.com/osse101/CardBinder_Go/internal/wishlist"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubSourceRepo struct {
	mu      sync.Mutex
	nextID  int
	sources map[int]domain.ImportSource
}

func newStubSourceRepo() *stubSourceRepo {
	return &stubSourceRepo{nextID: 1, sources: make(map[int]domain.ImportSource)}
}

func (s *stubSourceRepo) CreateImportSource(_ context.Context, source *domain.ImportSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	source.ID = s.nextID
	s.nextID++
	s.sources[source.ID] = *source
	return nil
}

func (s *stubSourceRepo) GetImportSourceByID(_ context.Context, sourceID int) (*domain.ImportSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	source, ok := s.sources[sourceID]
	if !ok {
		return nil, nil
	}
	return &source, nil
}

func (s *stubSourceRepo) ListImportSources(_ context.Context) ([]domain.ImportSource, error) {
	return nil, nil
}

func (s *stubSourceRepo) UpdateImportSource(_ context.Context, source domain.ImportSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[source.ID] = source
	return nil
}

func (s *stubSourceRepo) DeleteImportSource(_ context.Context, sourceID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sources, sourceID)
	return nil
}

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cardRepo := card.NewFakeRepository()
	cardRepo.SeedCard(domain.Card{ID: 1, Name: "Lightning Bolt"})
	cardRepo.SeedPrinting(domain.Printing{ID: 101, CardID: 1, SetCode: "LEA"})
	cardSvc := card.NewService(cardRepo)

	holdings := collection.NewFakeRepository()

	return NewServer(0, testAPIKey, nil, stubPinger{}, Services{
		User:         user.NewService(user.NewFakeRepository()),
		Card:         cardSvc,
		Collection:   collection.NewService(holdings, cardSvc),
		Wishlist:     wishlist.NewService(holdings, cardSvc),
		Price:        price.NewService(price.NewFakeRepository(), cardSvc),
		Deck:         deck.NewService(deck.NewFakeRepository(), cardSvc),
		ImportSource: importsource.NewService(newStubSourceRepo()),
	})
}

func TestServerRouting(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Handler()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		userID         string
		expectedStatus int
	}{
		{name: "healthz", method: "GET", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz", method: "GET", path: "/readyz", expectedStatus: http.StatusOK},
		{name: "version", method: "GET", path: "/version", expectedStatus: http.StatusOK},
		{name: "metrics", method: "GET", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "card search", method: "GET", path: "/api/cards?name=bolt", expectedStatus: http.StatusOK},
		{name: "card by id", method: "GET", path: "/api/cards/1", expectedStatus: http.StatusOK},
		{name: "printings", method: "GET", path: "/api/cards/1/printings", expectedStatus: http.StatusOK},
		{name: "printing by id", method: "GET", path: "/api/printings/101", expectedStatus: http.StatusOK},
		{
			name:           "collection quick add",
			method:         "POST",
			path:           "/api/collection/cards/quick-add",
			body:           `{"printingId":101,"quantity":1}`,
			userID:         "44444444-4444-4444-4444-444444444444",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wishlist list",
			method:         "GET",
			path:           "/api/wishlist/cards",
			userID:         "44444444-4444-4444-4444-444444444444",
			expectedStatus: http.StatusOK,
		},
		{name: "price history", method: "GET", path: "/api/prices/101/history", expectedStatus: http.StatusOK},
		{name: "admin users", method: "GET", path: "/api/admin/users", expectedStatus: http.StatusOK},
		{name: "import sources", method: "GET", path: "/api/admin/import-sources", expectedStatus: http.StatusOK},
		{name: "unknown route", method: "GET", path: "/api/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAPIKey, testAPIKey)
			if tt.userID != "" {
				req.Header.Set("X-User-Id", tt.userID)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestServerRejectsMissingAPIKey(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/cards", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
