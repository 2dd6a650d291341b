package price

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Price for tests. It reproduces
// the one-point-per-day dedup the postgres query performs.
type FakeRepository struct {
	mu     sync.Mutex
	points []domain.PricePoint
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (f *FakeRepository) GetDailyPrices(_ context.Context, printingID int, since time.Time) ([]domain.DailyPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// latest recording per calendar day
	latest := make(map[string]domain.PricePoint)
	for _, p := range f.points {
		if p.CardPrintingID != printingID || p.RecordedAt.Before(since) {
			continue
		}
		day := p.RecordedAt.Format("2006-01-02")
		if prev, ok := latest[day]; !ok || p.RecordedAt.After(prev.RecordedAt) {
			latest[day] = p
		}
	}

	days := make([]string, 0, len(latest))
	for day := range latest {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]domain.DailyPrice, 0, len(days))
	for _, day := range days {
		out = append(out, domain.DailyPrice{Day: day, Price: domain.Cents(latest[day].PriceCents)})
	}
	return out, nil
}

func (f *FakeRepository) InsertPricePoint(_ context.Context, point domain.PricePoint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.points = append(f.points, point)
	return nil
}
