package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nkarpenko/bookshelf/internal/models"
)

// setupTestStorage creates an in-memory storage with migrations applied.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	return s, func() {
		require.NoError(t, s.Close())
	}
}

// newTestUser builds a user record with unique username/email.
func newTestUser(username, email string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$examplehashexamplehashexamplehash",
		CreatedAt:    time.Now(),
	}
}

func TestNew_AppliesMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var count int
	err := s.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'saved_books')`,
	).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
