package user

import (
	"context"
	"fmt"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	RegisterUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// Admin management. Both operations enforce the last-administrator
	// invariant: a mutation that would leave zero admins fails with
	// domain.ErrLastAdmin and nothing is written.
	SetAdminFlag(ctx context.Context, userID string, isAdmin bool) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, user domain.User) (domain.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		log.Error("Failed to create user", "error", err, "username", user.Username)
		return domain.User{}, err
	}

	log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) UpdateUser(ctx context.Context, user domain.User) error {
	return s.repo.UpdateUser(ctx, user)
}

// SetAdminFlag flips the user's administrator flag. Demoting runs the
// last-admin check and the update on one transaction, so two concurrent
// demotions cannot both pass the check.
func (s *service) SetAdminFlag(ctx context.Context, userID string, isAdmin bool) (*domain.User, error) {
	log := logger.FromContext(ctx)

	var updated *domain.User
	err := s.withTx(ctx, func(tx repository.UserTx) error {
		u, err := tx.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if u.IsAdmin && !isAdmin {
			if err := ensureAnotherAdminRemains(ctx, tx); err != nil {
				return err
			}
		}

		if err := tx.SetAdmin(ctx, userID, isAdmin); err != nil {
			return err
		}

		u.IsAdmin = isAdmin
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Admin flag updated", "user_id", userID, "is_admin", isAdmin)
	return updated, nil
}

// DeleteUser removes the user. Deleting an administrator is rejected with
// domain.ErrLastAdmin when no other administrator would remain.
func (s *service) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	err := s.withTx(ctx, func(tx repository.UserTx) error {
		u, err := tx.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if u.IsAdmin {
			if err := ensureAnotherAdminRemains(ctx, tx); err != nil {
				return err
			}
		}

		return tx.DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	log.Info("User deleted", "user_id", userID)
	return nil
}

// ensureAnotherAdminRemains fails with domain.ErrLastAdmin when the live
// admin count is one or less. The count locks the admin rows, so it must run
// on the same transaction as the removing mutation.
func ensureAnotherAdminRemains(ctx context.Context, tx repository.UserTx) error {
	count, err := tx.CountAdminsForUpdate(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain.ErrLastAdmin
	}
	return nil
}

// withTx executes a function within a transaction.
// It handles begin, commit, and rollback automatically.
func (s *service) withTx(ctx context.Context, operation func(tx repository.UserTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := operation(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Error("Failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
