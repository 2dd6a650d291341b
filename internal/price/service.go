package price

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/metrics"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// DefaultWindowDays is the trailing window used when the caller does not
// supply one.
const DefaultWindowDays = 30

// PrintingChecker answers whether a printing exists in the catalog.
type PrintingChecker interface {
	PrintingExists(ctx context.Context, printingID int) (bool, error)
}

// Service defines the interface for price history reads and recording.
type Service interface {
	// GetHistory returns the trailing-window daily history for a
	// printing, at most one point per calendar day, oldest first. A
	// non-positive days value falls back to DefaultWindowDays.
	GetHistory(ctx context.Context, printingID int, days int) (*domain.PriceHistory, error)

	// RecordPrice appends a price observation for a printing.
	RecordPrice(ctx context.Context, printingID int, priceCents int64, recordedAt time.Time) error
}

type service struct {
	repo    repository.Price
	catalog PrintingChecker
	now     func() time.Time
}

// NewService creates a new price service
func NewService(repo repository.Price, catalog PrintingChecker) Service {
	return &service{repo: repo, catalog: catalog, now: time.Now}
}

func (s *service) GetHistory(ctx context.Context, printingID int, days int) (*domain.PriceHistory, error) {
	if err := s.requirePrinting(ctx, printingID); err != nil {
		return nil, err
	}

	if days <= 0 {
		days = DefaultWindowDays
	}
	since := s.now().AddDate(0, 0, -days)

	points, err := s.repo.GetDailyPrices(ctx, printingID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	if points == nil {
		points = []domain.DailyPrice{}
	}
	return &domain.PriceHistory{Points: points}, nil
}

func (s *service) RecordPrice(ctx context.Context, printingID int, priceCents int64, recordedAt time.Time) error {
	log := logger.FromContext(ctx)

	if err := s.requirePrinting(ctx, printingID); err != nil {
		return err
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	err := s.repo.InsertPricePoint(ctx, domain.PricePoint{
		CardPrintingID: printingID,
		PriceCents:     priceCents,
		RecordedAt:     recordedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to record price: %w", err)
	}

	metrics.PricePointsRecorded.Inc()
	log.Debug("Recorded price point", "printing_id", printingID, "price_cents", priceCents)
	return nil
}

func (s *service) requirePrinting(ctx context.Context, printingID int) error {
	exists, err := s.catalog.PrintingExists(ctx, printingID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: printing %d", domain.ErrPrintingNotFound, printingID)
	}
	return nil
}
