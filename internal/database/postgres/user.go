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

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, username, email, display_name, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user and fills in the generated ID and timestamps.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, display_name, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.DisplayName, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if mapped := translateConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID returns the user with the given ID, or domain.ErrUserNotFound.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, uid))
}

// GetUserByUsername returns the user with the given username, or domain.ErrUserNotFound.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// ListUsers returns all users ordered by username.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser rewrites the user's mutable fields.
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	uid, err := parseUserUUID(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	query := `
		UPDATE users
		SET username = $1, email = $2, display_name = $3, is_admin = $4, updated_at = NOW()
		WHERE user_id = $5
	`
	tag, err := r.db.Exec(ctx, query, user.Username, user.Email, user.DisplayName, user.IsAdmin, uid)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CountAdmins returns the number of users currently flagged administrator.
func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// BeginTx opens a transaction for guarded user mutations.
func (r *UserRepository) BeginTx(ctx context.Context) (repository.UserTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &userTx{tx: tx}, nil
}

type userTx struct {
	tx pgx.Tx
}

func (t *userTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}
func (t *userTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *userTx) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 FOR UPDATE`
	return scanUser(t.tx.QueryRow(ctx, query, uid))
}

// CountAdminsForUpdate locks the admin rows so a concurrent removal cannot
// observe the same count and drop the set to zero.
func (t *userTx) CountAdminsForUpdate(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM (SELECT user_id FROM users WHERE is_admin FOR UPDATE) locked`
	if err := t.tx.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (t *userTx) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tag, err := t.tx.Exec(ctx, `UPDATE users SET is_admin = $1, updated_at = NOW() WHERE user_id = $2`, isAdmin, uid)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *userTx) DeleteUser(ctx context.Context, userID string) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
