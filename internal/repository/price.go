package repository

import (
	"context"
	"time"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// Price defines the interface for price history persistence.
type Price interface {
	// GetDailyPrices returns at most one point per calendar day in
	// [since, now], the most recently recorded point within each day,
	// oldest day first.
	GetDailyPrices(ctx context.Context, printingID int, since time.Time) ([]domain.DailyPrice, error)
	InsertPricePoint(ctx context.Context, point domain.PricePoint) error
}
