// Package seed loads the baseline catalog and the initial administrator.
// Every insert is keyed on a natural unique column, so applying it
// repeatedly leaves the database unchanged.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type printingFixture struct {
	SetCode         string
	CollectorNumber string
	Rarity          string
	Style           string
}

type cardFixture struct {
	Name      string
	Type      string
	Text      string
	Printings []printingFixture
}

var catalog = []cardFixture{
	{
		Name: "Emberfang Drake", Type: "Creature", Text: "Flying. When Emberfang Drake attacks, it deals 1 damage to any target.",
		Printings: []printingFixture{
			{SetCode: "COR", CollectorNumber: "014", Rarity: "rare", Style: "normal"},
			{SetCode: "COR", CollectorNumber: "014", Rarity: "rare", Style: "foil"},
		},
	},
	{
		Name: "Tidebound Scholar", Type: "Creature", Text: "When Tidebound Scholar enters, draw a card.",
		Printings: []printingFixture{
			{SetCode: "COR", CollectorNumber: "058", Rarity: "common", Style: "normal"},
		},
	},
	{
		Name: "Verdant Reclamation", Type: "Sorcery", Text: "Return up to two cards from your graveyard to your hand.",
		Printings: []printingFixture{
			{SetCode: "COR", CollectorNumber: "112", Rarity: "uncommon", Style: "normal"},
			{SetCode: "PRM", CollectorNumber: "007", Rarity: "uncommon", Style: "promo"},
		},
	},
}

const initialAdminUsername = "admin"

// Apply seeds the catalog and ensures one administrator exists.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, card := range catalog {
		var cardID int
		err := tx.QueryRow(ctx, `
			WITH inserted AS (
				INSERT INTO cards (card_name, card_type, card_text)
				SELECT $1, $2, $3
				WHERE NOT EXISTS (SELECT 1 FROM cards WHERE card_name = $1)
				RETURNING card_id
			)
			SELECT card_id FROM inserted
			UNION ALL
			SELECT card_id FROM cards WHERE card_name = $1
			LIMIT 1
		`, card.Name, card.Type, card.Text).Scan(&cardID)
		if err != nil {
			return fmt.Errorf("failed to seed card %q: %w", card.Name, err)
		}

		for _, p := range card.Printings {
			_, err := tx.Exec(ctx, `
				INSERT INTO card_printings (card_id, set_code, collector_number, rarity, style, image_url)
				VALUES ($1, $2, $3, $4, $5, '')
				ON CONFLICT (set_code, collector_number, style) DO NOTHING
			`, cardID, p.SetCode, p.CollectorNumber, p.Rarity, p.Style)
			if err != nil {
				return fmt.Errorf("failed to seed printing %s/%s: %w", p.SetCode, p.CollectorNumber, err)
			}
		}
	}

	if err := seedInitialAdmin(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	slog.Info("Seed applied", "cards", len(catalog))
	return nil
}

// seedInitialAdmin inserts the bootstrap administrator. Without it the
// admin endpoints are unusable on a fresh database, since promoting a
// user requires an existing administrator.
func seedInitialAdmin(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (username, display_name, is_admin)
		VALUES ($1, 'Administrator', TRUE)
		ON CONFLICT (username) DO NOTHING
	`, initialAdminUsername)
	if err != nil {
		return fmt.Errorf("failed to seed initial admin: %w", err)
	}
	return nil
}
