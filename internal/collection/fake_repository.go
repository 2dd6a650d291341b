package collection

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

type recordKey struct {
	userID     string
	printingID int
}

// FakeRepository is an in-memory repository.Collection for tests. The
// wishlist package's tests reuse it since both services share the store.
type FakeRepository struct {
	mu      sync.Mutex
	records map[recordKey]domain.UserCardRecord

	// UpsertErr, when set, is returned by every record write. Tests use it
	// to stand in for store-level rejections such as a deleted user.
	UpsertErr error
}

// NewFakeRepository creates an empty in-memory holdings store.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{records: make(map[recordKey]domain.UserCardRecord)}
}

// Seed inserts a record directly, bypassing service logic.
func (f *FakeRepository) Seed(rec domain.UserCardRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[recordKey{rec.UserID, rec.CardPrintingID}] = rec
}

func (f *FakeRepository) GetRecord(_ context.Context, userID string, printingID int) (*domain.UserCardRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[recordKey{userID, printingID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *FakeRepository) ListRecords(_ context.Context, userID string) ([]domain.UserCardRecord, error) {
	return f.list(userID, false), nil
}

func (f *FakeRepository) ListWantedRecords(_ context.Context, userID string) ([]domain.UserCardRecord, error) {
	return f.list(userID, true), nil
}

func (f *FakeRepository) list(userID string, wantedOnly bool) []domain.UserCardRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.UserCardRecord
	for key, rec := range f.records {
		if key.userID != userID {
			continue
		}
		if wantedOnly && rec.QuantityWanted == 0 {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardPrintingID < out[j].CardPrintingID })
	return out
}

// BeginTx locks the repository for the transaction's lifetime so tests see
// the same serialization the row locks provide in postgres.
func (f *FakeRepository) BeginTx(_ context.Context) (repository.CollectionTx, error) {
	f.mu.Lock()
	staged := make(map[recordKey]domain.UserCardRecord, len(f.records))
	for k, v := range f.records {
		staged[k] = v
	}
	return &fakeCollectionTx{repo: f, staged: staged}, nil
}

type fakeCollectionTx struct {
	repo   *FakeRepository
	staged map[recordKey]domain.UserCardRecord
	done   bool
}

func (t *fakeCollectionTx) Commit(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.records = t.staged
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeCollectionTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeCollectionTx) GetRecordForUpdate(_ context.Context, userID string, printingID int) (*domain.UserCardRecord, error) {
	rec, ok := t.staged[recordKey{userID, printingID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *fakeCollectionTx) UpsertRecord(_ context.Context, record domain.UserCardRecord) error {
	if t.repo.UpsertErr != nil {
		return t.repo.UpsertErr
	}
	t.staged[recordKey{record.UserID, record.CardPrintingID}] = record
	return nil
}

func (t *fakeCollectionTx) DeleteRecord(_ context.Context, userID string, printingID int) error {
	delete(t.staged, recordKey{userID, printingID})
	return nil
}
