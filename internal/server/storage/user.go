package storage

import (
	"context"

	"github.com/nkarpenko/bookshelf/internal/models"
)

// UserStorage defines the interface for user persistence. It exclusively
// owns all user records; callers never cache them across requests.
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Returns ErrUsernameTaken or ErrEmailTaken on a unique-constraint
	// violation.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user, including the saved collection.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user, including the saved collection.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// GetUserByUsername retrieves a user, including the saved collection.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListUsers returns all users with their saved collections.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// AddSavedBook atomically adds the book to the user's saved collection
	// with set semantics keyed by book id: adding an already-present book
	// id is a no-op, regardless of the other fields. Returns the updated
	// collection. Returns ErrUserNotFound if the user doesn't exist.
	AddSavedBook(ctx context.Context, userID string, book models.SavedBook) ([]models.SavedBook, error)

	// RemoveSavedBook atomically removes any entry with the given book id
	// from the user's saved collection. Removing an absent book id is a
	// no-op. Returns the updated collection. Returns ErrUserNotFound if
	// the user doesn't exist.
	RemoveSavedBook(ctx context.Context, userID, bookID string) ([]models.SavedBook, error)
}
