package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// ImportSourceRepository implements import source persistence for PostgreSQL
type ImportSourceRepository struct {
	db *pgxpool.Pool
}

// NewImportSourceRepository creates a new ImportSourceRepository
func NewImportSourceRepository(db *pgxpool.Pool) *ImportSourceRepository {
	return &ImportSourceRepository{db: db}
}

const importSourceColumns = `source_id, source_name, url, kind, enabled, created_at, updated_at`

// CreateImportSource inserts a source and fills in the generated ID.
func (r *ImportSourceRepository) CreateImportSource(ctx context.Context, source *domain.ImportSource) error {
	query := `
		INSERT INTO import_sources (source_name, url, kind, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING source_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, source.Name, source.URL, source.Kind, source.Enabled).
		Scan(&source.ID, &source.CreatedAt, &source.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert import source: %w", err)
	}
	return nil
}

// GetImportSourceByID returns the source, or domain.ErrImportSourceNotFound.
func (r *ImportSourceRepository) GetImportSourceByID(ctx context.Context, sourceID int) (*domain.ImportSource, error) {
	query := `SELECT ` + importSourceColumns + ` FROM import_sources WHERE source_id = $1`
	var s domain.ImportSource
	err := r.db.QueryRow(ctx, query, sourceID).
		Scan(&s.ID, &s.Name, &s.URL, &s.Kind, &s.Enabled, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImportSourceNotFound
		}
		return nil, fmt.Errorf("failed to get import source: %w", err)
	}
	return &s, nil
}

// ListImportSources returns all sources ordered by name.
func (r *ImportSourceRepository) ListImportSources(ctx context.Context) ([]domain.ImportSource, error) {
	query := `SELECT ` + importSourceColumns + ` FROM import_sources ORDER BY source_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list import sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.ImportSource
	for rows.Next() {
		var s domain.ImportSource
		if err := rows.Scan(&s.ID, &s.Name, &s.URL, &s.Kind, &s.Enabled, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// UpdateImportSource rewrites the source's mutable fields.
func (r *ImportSourceRepository) UpdateImportSource(ctx context.Context, source domain.ImportSource) error {
	query := `
		UPDATE import_sources
		SET source_name = $1, url = $2, kind = $3, enabled = $4, updated_at = NOW()
		WHERE source_id = $5
	`
	tag, err := r.db.Exec(ctx, query, source.Name, source.URL, source.Kind, source.Enabled, source.ID)
	if err != nil {
		return fmt.Errorf("failed to update import source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImportSourceNotFound
	}
	return nil
}

// DeleteImportSource removes the source.
func (r *ImportSourceRepository) DeleteImportSource(ctx context.Context, sourceID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM import_sources WHERE source_id = $1`, sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete import source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImportSourceNotFound
	}
	return nil
}
