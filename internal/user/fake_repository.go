package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CardBinder_Go/internal/domain"
	"github.com/osse101/CardBinder_Go/internal/repository"
)

// FakeRepository is an in-memory repository.User for tests. It serializes
// all access with one mutex, which stands in for the store's row locking.
type FakeRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

// NewFakeRepository creates an empty in-memory user repository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]domain.User)}
}

// Seed inserts a user directly, bypassing service logic.
func (f *FakeRepository) Seed(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = u
}

func (f *FakeRepository) CreateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = *user
	return nil
}

func (f *FakeRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (f *FakeRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (f *FakeRepository) UpdateUser(_ context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *FakeRepository) CountAdmins(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countAdminsLocked(), nil
}

func (f *FakeRepository) countAdminsLocked() int {
	count := 0
	for _, u := range f.users {
		if u.IsAdmin {
			count++
		}
	}
	return count
}

// BeginTx locks the repository for the transaction's lifetime, mirroring the
// FOR UPDATE serialization the postgres implementation relies on.
func (f *FakeRepository) BeginTx(_ context.Context) (repository.UserTx, error) {
	f.mu.Lock()
	return &fakeUserTx{repo: f, staged: cloneUsers(f.users)}, nil
}

type fakeUserTx struct {
	repo   *FakeRepository
	staged map[string]domain.User
	done   bool
}

func cloneUsers(users map[string]domain.User) map[string]domain.User {
	out := make(map[string]domain.User, len(users))
	for k, v := range users {
		out[k] = v
	}
	return out
}

func (t *fakeUserTx) Commit(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.users = t.staged
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeUserTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeUserTx) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := t.staged[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *fakeUserTx) CountAdminsForUpdate(_ context.Context) (int, error) {
	count := 0
	for _, u := range t.staged {
		if u.IsAdmin {
			count++
		}
	}
	return count, nil
}

func (t *fakeUserTx) SetAdmin(_ context.Context, userID string, isAdmin bool) error {
	u, ok := t.staged[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsAdmin = isAdmin
	u.UpdatedAt = time.Now()
	t.staged[userID] = u
	return nil
}

func (t *fakeUserTx) DeleteUser(_ context.Context, userID string) error {
	if _, ok := t.staged[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(t.staged, userID)
	return nil
}
