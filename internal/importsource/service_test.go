package importsource

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

type fakeRepository struct {
	mu      sync.Mutex
	nextID  int
	sources map[int]domain.ImportSource
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, sources: make(map[int]domain.ImportSource)}
}

func (f *fakeRepository) CreateImportSource(_ context.Context, source *domain.ImportSource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	source.ID = f.nextID
	f.nextID++
	source.CreatedAt = time.Now()
	source.UpdatedAt = source.CreatedAt
	f.sources[source.ID] = *source
	return nil
}

func (f *fakeRepository) GetImportSourceByID(_ context.Context, sourceID int) (*domain.ImportSource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	source, ok := f.sources[sourceID]
	if !ok {
		return nil, nil
	}
	return &source, nil
}

func (f *fakeRepository) ListImportSources(_ context.Context) ([]domain.ImportSource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ImportSource, 0, len(f.sources))
	for _, source := range f.sources {
		out = append(out, source)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) UpdateImportSource(_ context.Context, source domain.ImportSource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	source.UpdatedAt = time.Now()
	f.sources[source.ID] = source
	return nil
}

func (f *fakeRepository) DeleteImportSource(_ context.Context, sourceID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sources, sourceID)
	return nil
}

func TestCreateSource(t *testing.T) {
	svc := NewService(newFakeRepository())

	source, err := svc.CreateSource(context.Background(), "scryfall", "https://api.scryfall.com/bulk", domain.ImportSourceKindCatalog, true)
	require.NoError(t, err)
	assert.NotZero(t, source.ID)
	assert.True(t, source.Enabled)
}

func TestCreateSource_Validation(t *testing.T) {
	tests := []struct {
		name       string
		sourceName string
		url        string
		kind       string
	}{
		{name: "empty name", sourceName: " ", url: "https://example.com", kind: domain.ImportSourceKindCatalog},
		{name: "relative url", sourceName: "feed", url: "/bulk", kind: domain.ImportSourceKindCatalog},
		{name: "unknown kind", sourceName: "feed", url: "https://example.com", kind: "tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepository())
			_, err := svc.CreateSource(context.Background(), tt.sourceName, tt.url, tt.kind, true)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdateSource(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	source, err := svc.CreateSource(ctx, "scryfall", "https://api.scryfall.com/bulk", domain.ImportSourceKindCatalog, true)
	require.NoError(t, err)

	updated, err := svc.UpdateSource(ctx, source.ID, "scryfall-prices", "https://api.scryfall.com/prices", domain.ImportSourceKindPrices, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSourceKindPrices, updated.Kind)
	assert.False(t, updated.Enabled)
}

func TestGetSource_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.GetSource(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrImportSourceNotFound)
}

func TestDeleteSource(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	source, err := svc.CreateSource(ctx, "scryfall", "https://api.scryfall.com/bulk", domain.ImportSourceKindPrices, true)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSource(ctx, source.ID))
	err = svc.DeleteSource(ctx, source.ID)
	assert.ErrorIs(t, err, domain.ErrImportSourceNotFound)
}
