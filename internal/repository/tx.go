package repository

import "context"

// Tx is the common contract for transactional repository handles.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
