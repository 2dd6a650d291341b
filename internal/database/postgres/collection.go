package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// CollectionRepository implements holdings persistence for PostgreSQL.
// Rows live in user_card_records keyed by (user_id, printing_id); an
// all-zero record is deleted instead of stored.
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

const recordColumns = `user_id, printing_id, quantity_owned, quantity_wanted, quantity_proxy_owned`

func scanRecord(row pgx.Row) (*domain.UserCardRecord, error) {
	var rec domain.UserCardRecord
	err := row.Scan(&rec.UserID, &rec.CardPrintingID, &rec.QuantityOwned, &rec.QuantityWanted, &rec.QuantityProxyOwned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan card record: %w", err)
	}
	return &rec, nil
}

// GetRecord returns the record for (userID, printingID), or nil when absent.
func (r *CollectionRepository) GetRecord(ctx context.Context, userID string, printingID int) (*domain.UserCardRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + recordColumns + ` FROM user_card_records WHERE user_id = $1 AND printing_id = $2`
	return scanRecord(r.db.QueryRow(ctx, query, uid, printingID))
}

// ListRecords returns all of the user's records ordered by printing ID.
func (r *CollectionRepository) ListRecords(ctx context.Context, userID string) ([]domain.UserCardRecord, error) {
	return r.listRecords(ctx, userID, false)
}

// ListWantedRecords returns only records with a non-zero wanted counter.
func (r *CollectionRepository) ListWantedRecords(ctx context.Context, userID string) ([]domain.UserCardRecord, error) {
	return r.listRecords(ctx, userID, true)
}

func (r *CollectionRepository) listRecords(ctx context.Context, userID string, wantedOnly bool) ([]domain.UserCardRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	query := `SELECT ` + recordColumns + ` FROM user_card_records WHERE user_id = $1`
	if wantedOnly {
		query += ` AND quantity_wanted > 0`
	}
	query += ` ORDER BY printing_id`

	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list card records: %w", err)
	}
	defer rows.Close()

	var records []domain.UserCardRecord
	for rows.Next() {
		var rec domain.UserCardRecord
		if err := rows.Scan(&rec.UserID, &rec.CardPrintingID, &rec.QuantityOwned, &rec.QuantityWanted, &rec.QuantityProxyOwned); err != nil {
			return nil, fmt.Errorf("failed to scan card record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// BeginTx opens a transaction for counter mutations.
func (r *CollectionRepository) BeginTx(ctx context.Context) (repository.CollectionTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &collectionTx{tx: tx}, nil
}

type collectionTx struct {
	tx pgx.Tx
}

func (t *collectionTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}
func (t *collectionTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// GetRecordForUpdate row-locks the record so concurrent adjustments to the
// same (user, printing) pair serialize at the store.
func (t *collectionTx) GetRecordForUpdate(ctx context.Context, userID string, printingID int) (*domain.UserCardRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + recordColumns + ` FROM user_card_records WHERE user_id = $1 AND printing_id = $2 FOR UPDATE`
	return scanRecord(t.tx.QueryRow(ctx, query, uid, printingID))
}

// UpsertRecord writes all three counters as one statement.
func (t *collectionTx) UpsertRecord(ctx context.Context, record domain.UserCardRecord) error {
	uid, err := parseUserUUID(record.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	query := `
		INSERT INTO user_card_records (user_id, printing_id, quantity_owned, quantity_wanted, quantity_proxy_owned)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, printing_id) DO UPDATE
		SET quantity_owned = EXCLUDED.quantity_owned,
		    quantity_wanted = EXCLUDED.quantity_wanted,
		    quantity_proxy_owned = EXCLUDED.quantity_proxy_owned
	`
	_, err = t.tx.Exec(ctx, query, uid, record.CardPrintingID, record.QuantityOwned, record.QuantityWanted, record.QuantityProxyOwned)
	if err != nil {
		if mapped := translateConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to upsert card record: %w", err)
	}
	return nil
}

func (t *collectionTx) DeleteRecord(ctx context.Context, userID string, printingID int) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	_, err = t.tx.Exec(ctx, `DELETE FROM user_card_records WHERE user_id = $1 AND printing_id = $2`, uid, printingID)
	if err != nil {
		return fmt.Errorf("failed to delete card record: %w", err)
	}
	return nil
}
