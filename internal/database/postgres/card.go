package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// CardRepository implements catalog reads for PostgreSQL
type CardRepository struct {
	db *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

// GetCardByID returns the card with the given ID, or domain.ErrCardNotFound.
func (r *CardRepository) GetCardByID(ctx context.Context, cardID int) (*domain.Card, error) {
	query := `SELECT card_id, card_name, card_type, card_text FROM cards WHERE card_id = $1`
	var c domain.Card
	err := r.db.QueryRow(ctx, query, cardID).Scan(&c.ID, &c.Name, &c.Type, &c.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &c, nil
}

// ListCards returns cards, optionally filtered by a case-insensitive name
// substring.
func (r *CardRepository) ListCards(ctx context.Context, nameFilter string) ([]domain.Card, error) {
	query := `SELECT card_id, card_name, card_type, card_text FROM cards`
	args := []interface{}{}
	if nameFilter != "" {
		query += ` WHERE card_name ILIKE '%' || $1 || '%'`
		args = append(args, nameFilter)
	}
	query += ` ORDER BY card_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Text); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

const printingColumns = `printing_id, card_id, set_code, collector_number, rarity, style, image_url`

// GetPrintingByID returns the printing with the given ID, or domain.ErrPrintingNotFound.
func (r *CardRepository) GetPrintingByID(ctx context.Context, printingID int) (*domain.Printing, error) {
	query := `SELECT ` + printingColumns + ` FROM card_printings WHERE printing_id = $1`
	var p domain.Printing
	err := r.db.QueryRow(ctx, query, printingID).
		Scan(&p.ID, &p.CardID, &p.SetCode, &p.CollectorNumber, &p.Rarity, &p.Style, &p.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPrintingNotFound
		}
		return nil, fmt.Errorf("failed to get printing: %w", err)
	}
	return &p, nil
}

// ListPrintingsByCard returns all printings of a card ordered by set code.
func (r *CardRepository) ListPrintingsByCard(ctx context.Context, cardID int) ([]domain.Printing, error) {
	query := `SELECT ` + printingColumns + ` FROM card_printings WHERE card_id = $1 ORDER BY set_code, collector_number`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list printings: %w", err)
	}
	defer rows.Close()

	var printings []domain.Printing
	for rows.Next() {
		var p domain.Printing
		if err := rows.Scan(&p.ID, &p.CardID, &p.SetCode, &p.CollectorNumber, &p.Rarity, &p.Style, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan printing: %w", err)
		}
		printings = append(printings, p)
	}
	return printings, rows.Err()
}

// PrintingExists reports whether the printing is present in the catalog.
func (r *CardRepository) PrintingExists(ctx context.Context, printingID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM card_printings WHERE printing_id = $1)`, printingID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check printing existence: %w", err)
	}
	return exists, nil
}
