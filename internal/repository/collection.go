package repository

import (
	"context"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// Collection defines the interface for per-user per-printing holdings.
// Absent rows read as nil; a record whose counters are all zero is removed
// rather than stored.
type Collection interface {
	GetRecord(ctx context.Context, userID string, printingID int) (*domain.UserCardRecord, error)
	ListRecords(ctx context.Context, userID string) ([]domain.UserCardRecord, error)
	ListWantedRecords(ctx context.Context, userID string) ([]domain.UserCardRecord, error)

	BeginTx(ctx context.Context) (CollectionTx, error)
}

// CollectionTx is the transactional handle for counter mutations. Every
// adjustment is a read-modify-write on one handle: the row is locked on read
// and all three counters are written back together.
type CollectionTx interface {
	Tx
	GetRecordForUpdate(ctx context.Context, userID string, printingID int) (*domain.UserCardRecord, error)
	UpsertRecord(ctx context.Context, record domain.UserCardRecord) error
	DeleteRecord(ctx context.Context, userID string, printingID int) error
}
