// Package service implements the collection operations exposed to the
// transport layer: register, login, current user, and the idempotent
// save/remove mutations on a user's book collection.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nkarpenko/bookshelf/internal/models"
	"github.com/nkarpenko/bookshelf/internal/server/auth"
	"github.com/nkarpenko/bookshelf/internal/server/authn"
	"github.com/nkarpenko/bookshelf/internal/server/jwt"
	"github.com/nkarpenko/bookshelf/internal/server/storage"
	"github.com/nkarpenko/bookshelf/internal/validation"
)

// AuthResult bundles the token and profile returned by register and login.
type AuthResult struct {
	Token   string
	Profile models.Profile
}

// Collection is the business logic over the user store. It holds no state
// of its own: every mutation goes through the store's atomic primitives and
// user records are never cached across requests.
type Collection struct {
	logger *slog.Logger
	users  storage.UserStorage
	hasher *auth.PasswordHasher
	tokens *jwt.Service
}

// NewCollection creates the collection service.
func NewCollection(logger *slog.Logger, users storage.UserStorage, hasher *auth.PasswordHasher, tokens *jwt.Service) *Collection {
	return &Collection{
		logger: logger,
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user with an empty saved collection and logs them
// in. It fails with a ValidationError when a field is malformed or when the
// username or email is already taken.
func (c *Collection) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, validationErr("username", err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, validationErr("email", err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, validationErr("password", err.Error())
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := c.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTaken):
			return nil, validationErr("username", "username already taken")
		case errors.Is(err, storage.ErrEmailTaken):
			return nil, validationErr("email", "email already taken")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	c.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("username", username))

	return c.authResult(user)
}

// Login verifies the credentials for the given email and issues a fresh
// token. Every failure, unknown email or wrong password alike, surfaces as
// ErrCouldNotAuthenticate.
func (c *Collection) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrCouldNotAuthenticate
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !c.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrCouldNotAuthenticate
	}

	c.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))

	return c.authResult(user)
}

// CurrentUser returns the caller's stored profile. The profile never
// includes the password hash.
func (c *Collection) CurrentUser(ctx context.Context) (*models.Profile, error) {
	identity, err := authn.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := c.users.GetUserByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// The token outlived the account.
			return nil, authn.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile := user.Profile()
	return &profile, nil
}

// SaveBook adds a book to the caller's saved collection and returns the
// updated collection. Saving a book that is already present is a no-op, so
// the operation is safe to retry.
func (c *Collection) SaveBook(ctx context.Context, book models.SavedBook) ([]models.SavedBook, error) {
	identity, err := authn.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if book.BookID == "" {
		return nil, validationErr("book_id", "book id is required")
	}
	if book.Title == "" {
		return nil, validationErr("title", "title is required")
	}

	books, err := c.users.AddSavedBook(ctx, identity.ID, book)
	if err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	c.logger.InfoContext(ctx, "book saved",
		slog.String("user_id", identity.ID),
		slog.String("book_id", book.BookID))

	return books, nil
}

// RemoveBook removes a book from the caller's saved collection and returns
// the updated collection. Removing an absent book is a no-op.
func (c *Collection) RemoveBook(ctx context.Context, bookID string) ([]models.SavedBook, error) {
	identity, err := authn.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if bookID == "" {
		return nil, validationErr("book_id", "book id is required")
	}

	books, err := c.users.RemoveSavedBook(ctx, identity.ID, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove book: %w", err)
	}

	c.logger.InfoContext(ctx, "book removed",
		slog.String("user_id", identity.ID),
		slog.String("book_id", bookID))

	return books, nil
}

// GetUser returns a user's public profile by username.
func (c *Collection) GetUser(ctx context.Context, username string) (*models.Profile, error) {
	user, err := c.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile := user.Profile()
	return &profile, nil
}

// ListUsers returns the public profiles of all users.
func (c *Collection) ListUsers(ctx context.Context) ([]models.Profile, error) {
	users, err := c.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]models.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}

	return profiles, nil
}

// authResult issues a token for the user and packages it with the profile.
func (c *Collection) authResult(user *models.User) (*AuthResult, error) {
	token, err := c.tokens.Issue(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		Profile: user.Profile(),
	}, nil
}
