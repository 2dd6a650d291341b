package repository

import (
	"context"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// Card defines the interface for catalog reads. The catalog is written only
// by seeding and import tooling, so the repository surface is read-only.
type Card interface {
	GetCardByID(ctx context.Context, cardID int) (*domain.Card, error)
	ListCards(ctx context.Context, nameFilter string) ([]domain.Card, error)
	GetPrintingByID(ctx context.Context, printingID int) (*domain.Printing, error)
	ListPrintingsByCard(ctx context.Context, cardID int) ([]domain.Printing, error)
	PrintingExists(ctx context.Context, printingID int) (bool, error)
}
