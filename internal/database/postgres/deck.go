package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// DeckRepository implements deck persistence for PostgreSQL
type DeckRepository struct {
	db *pgxpool.Pool
}

// NewDeckRepository creates a new DeckRepository
func NewDeckRepository(db *pgxpool.Pool) *DeckRepository {
	return &DeckRepository{db: db}
}

// CreateDeck inserts a deck and its card list in one transaction.
func (r *DeckRepository) CreateDeck(ctx context.Context, deck *domain.Deck) error {
	uid, err := parseUserUUID(deck.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO decks (user_id, deck_name, format, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING deck_id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query, uid, deck.Name, deck.Format, deck.Description).
		Scan(&deck.ID, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}

	if err := insertDeckCards(ctx, tx, deck.ID, deck.Cards); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// GetDeckByID returns the deck with its card list, or domain.ErrDeckNotFound.
func (r *DeckRepository) GetDeckByID(ctx context.Context, deckID int) (*domain.Deck, error) {
	query := `
		SELECT deck_id, user_id, deck_name, format, description, created_at, updated_at
		FROM decks WHERE deck_id = $1
	`
	var d domain.Deck
	err := r.db.QueryRow(ctx, query, deckID).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Format, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT printing_id, quantity FROM deck_cards WHERE deck_id = $1 ORDER BY printing_id`, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deck cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc domain.DeckCard
		if err := rows.Scan(&dc.CardPrintingID, &dc.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan deck card: %w", err)
		}
		d.Cards = append(d.Cards, dc)
	}
	return &d, rows.Err()
}

// ListDecksByUser returns the user's decks without card lists.
func (r *DeckRepository) ListDecksByUser(ctx context.Context, userID string) ([]domain.Deck, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	query := `
		SELECT deck_id, user_id, deck_name, format, description, created_at, updated_at
		FROM decks WHERE user_id = $1 ORDER BY deck_name
	`
	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Format, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// UpdateDeck rewrites the deck's metadata (not its card list).
func (r *DeckRepository) UpdateDeck(ctx context.Context, deck domain.Deck) error {
	query := `
		UPDATE decks
		SET deck_name = $1, format = $2, description = $3, updated_at = NOW()
		WHERE deck_id = $4
	`
	tag, err := r.db.Exec(ctx, query, deck.Name, deck.Format, deck.Description, deck.ID)
	if err != nil {
		return fmt.Errorf("failed to update deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeckNotFound
	}
	return nil
}

// DeleteDeck removes the deck; deck_cards rows cascade.
func (r *DeckRepository) DeleteDeck(ctx context.Context, deckID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM decks WHERE deck_id = $1`, deckID)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeckNotFound
	}
	return nil
}

// ReplaceDeckCards swaps the deck's entire card list in one transaction.
func (r *DeckRepository) ReplaceDeckCards(ctx context.Context, deckID int, cards []domain.DeckCard) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE decks SET updated_at = NOW() WHERE deck_id = $1`, deckID)
	if err != nil {
		return fmt.Errorf("failed to touch deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeckNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM deck_cards WHERE deck_id = $1`, deckID); err != nil {
		return fmt.Errorf("failed to clear deck cards: %w", err)
	}

	if err := insertDeckCards(ctx, tx, deckID, cards); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

func insertDeckCards(ctx context.Context, tx pgx.Tx, deckID int, cards []domain.DeckCard) error {
	for _, dc := range cards {
		_, err := tx.Exec(ctx,
			`INSERT INTO deck_cards (deck_id, printing_id, quantity) VALUES ($1, $2, $3)`,
			deckID, dc.CardPrintingID, dc.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert deck card: %w", err)
		}
	}
	return nil
}
