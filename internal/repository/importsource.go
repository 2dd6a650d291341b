package repository

import (
	"context"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// ImportSource defines the interface for import source persistence
type ImportSource interface {
	CreateImportSource(ctx context.Context, source *domain.ImportSource) error
	GetImportSourceByID(ctx context.Context, sourceID int) (*domain.ImportSource, error)
	ListImportSources(ctx context.Context) ([]domain.ImportSource, error)
	UpdateImportSource(ctx context.Context, source domain.ImportSource) error
	DeleteImportSource(ctx context.Context, sourceID int) error
}
