package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

func TestRegisterUser(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	u, err := svc.RegisterUser(context.Background(), domain.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.IsAdmin)

	_, err = svc.RegisterUser(context.Background(), domain.User{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteUser_LastAdminGuard(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	admin := domain.User{ID: "admin-a", Username: "a", IsAdmin: true}
	repo.Seed(admin)

	// Sole admin cannot be deleted
	err := svc.DeleteUser(context.Background(), "admin-a")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLastAdmin)

	// Nothing was written
	got, err := svc.GetUserByID(context.Background(), "admin-a")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
}

func TestDeleteUser_SecondAdminRemains(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	repo.Seed(domain.User{ID: "admin-a", Username: "a", IsAdmin: true})
	repo.Seed(domain.User{ID: "admin-b", Username: "b", IsAdmin: true})

	require.NoError(t, svc.DeleteUser(context.Background(), "admin-a"))

	_, err := svc.GetUserByID(context.Background(), "admin-a")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	count, err := repo.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteUser_NonAdminSkipsGuard(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	repo.Seed(domain.User{ID: "admin-a", Username: "a", IsAdmin: true})
	repo.Seed(domain.User{ID: "user-b", Username: "b"})

	require.NoError(t, svc.DeleteUser(context.Background(), "user-b"))

	count, err := repo.CountAdmins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	err := svc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSetAdminFlag(t *testing.T) {
	tests := []struct {
		name      string
		seed      []domain.User
		userID    string
		isAdmin   bool
		expectErr error
	}{
		{
			name:      "demoting sole admin is rejected",
			seed:      []domain.User{{ID: "a", Username: "a", IsAdmin: true}},
			userID:    "a",
			isAdmin:   false,
			expectErr: domain.ErrLastAdmin,
		},
		{
			name: "demoting one of two admins succeeds",
			seed: []domain.User{
				{ID: "a", Username: "a", IsAdmin: true},
				{ID: "b", Username: "b", IsAdmin: true},
			},
			userID:  "a",
			isAdmin: false,
		},
		{
			name:    "promoting a user never trips the guard",
			seed:    []domain.User{{ID: "a", Username: "a", IsAdmin: true}, {ID: "b", Username: "b"}},
			userID:  "b",
			isAdmin: true,
		},
		{
			name:    "re-granting admin to an admin is a no-op",
			seed:    []domain.User{{ID: "a", Username: "a", IsAdmin: true}},
			userID:  "a",
			isAdmin: true,
		},
		{
			name:      "unknown user",
			seed:      []domain.User{{ID: "a", Username: "a", IsAdmin: true}},
			userID:    "missing",
			isAdmin:   true,
			expectErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeRepository()
			svc := NewService(repo)
			for _, u := range tt.seed {
				repo.Seed(u)
			}

			updated, err := svc.SetAdminFlag(context.Background(), tt.userID, tt.isAdmin)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isAdmin, updated.IsAdmin)

			got, err := svc.GetUserByID(context.Background(), tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.isAdmin, got.IsAdmin)
		})
	}
}
