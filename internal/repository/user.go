package repository

import (
	"context"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	CountAdmins(ctx context.Context) (int, error)

	BeginTx(ctx context.Context) (UserTx, error)
}

// UserTx is the transactional handle for user mutations. The admin-count
// check and the removing mutation must run on the same handle so the last
// administrator invariant holds under concurrent removals.
type UserTx interface {
	Tx
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	CountAdminsForUpdate(ctx context.Context) (int, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	DeleteUser(ctx context.Context, userID string) error
}
