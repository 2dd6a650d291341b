package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// PriceRepository implements price history persistence for PostgreSQL
type PriceRepository struct {
	db *pgxpool.Pool
}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetDailyPrices collapses the history to one point per calendar day.
// DISTINCT ON with recorded_at DESC keeps the latest recording within each
// day; days without any recording produce no point.
func (r *PriceRepository) GetDailyPrices(ctx context.Context, printingID int, since time.Time) ([]domain.DailyPrice, error) {
	query := `
		SELECT DISTINCT ON (recorded_at::date)
		       TO_CHAR(recorded_at::date, 'YYYY-MM-DD'),
		       price_cents
		FROM price_points
		WHERE printing_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at::date ASC, recorded_at DESC
	`
	rows, err := r.db.Query(ctx, query, printingID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	var points []domain.DailyPrice
	for rows.Next() {
		var p domain.DailyPrice
		var cents int64
		if err := rows.Scan(&p.Day, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan price point: %w", err)
		}
		p.Price = domain.Cents(cents)
		points = append(points, p)
	}
	return points, rows.Err()
}

// InsertPricePoint records one price observation.
func (r *PriceRepository) InsertPricePoint(ctx context.Context, point domain.PricePoint) error {
	query := `
		INSERT INTO price_points (printing_id, price_cents, recorded_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, point.CardPrintingID, point.PriceCents, point.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert price point: %w", err)
	}
	return nil
}
