package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nkarpenko/bookshelf/internal/models"
	"github.com/nkarpenko/bookshelf/internal/server/storage"
)

// AddSavedBook adds the book to the user's saved collection and returns the
// updated collection. The insert is a single INSERT OR IGNORE keyed by
// (user_id, book_id), so re-adding a present book id is a no-op at the
// database, never a duplicate, even under concurrent calls.
func (s *Storage) AddSavedBook(ctx context.Context, userID string, book models.SavedBook) ([]models.SavedBook, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrUserNotFound
	}

	authors, err := json.Marshal(book.Authors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authors: %w", err)
	}

	query := `
		INSERT OR IGNORE INTO saved_books
			(user_id, book_id, title, authors, description, image, link)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query,
		userID,
		book.BookID,
		book.Title,
		string(authors),
		book.Description,
		book.Image,
		book.Link,
	); err != nil {
		return nil, fmt.Errorf("failed to insert saved book: %w", err)
	}

	return s.loadSavedBooks(ctx, userID)
}

// RemoveSavedBook removes any entry with the given book id from the user's
// saved collection and returns the updated collection. Removing an absent
// book id is a no-op.
func (s *Storage) RemoveSavedBook(ctx context.Context, userID, bookID string) ([]models.SavedBook, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrUserNotFound
	}

	query := `DELETE FROM saved_books WHERE user_id = ? AND book_id = ?`

	if _, err := s.db.ExecContext(ctx, query, userID, bookID); err != nil {
		return nil, fmt.Errorf("failed to delete saved book: %w", err)
	}

	return s.loadSavedBooks(ctx, userID)
}

// loadSavedBooks returns the user's saved collection in insertion order.
func (s *Storage) loadSavedBooks(ctx context.Context, userID string) ([]models.SavedBook, error) {
	query := `
		SELECT book_id, title, authors, description, image, link
		FROM saved_books
		WHERE user_id = ?
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved books: %w", err)
	}
	defer rows.Close()

	books := []models.SavedBook{}
	for rows.Next() {
		var book models.SavedBook
		var authorsJSON string
		if err := rows.Scan(
			&book.BookID,
			&book.Title,
			&authorsJSON,
			&book.Description,
			&book.Image,
			&book.Link,
		); err != nil {
			return nil, fmt.Errorf("failed to scan saved book: %w", err)
		}
		if err := json.Unmarshal([]byte(authorsJSON), &book.Authors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal authors: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved books: %w", err)
	}

	return books, nil
}
