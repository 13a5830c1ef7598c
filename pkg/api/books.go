package api

import "github.com/nkarpenko/bookshelf/internal/models"

// SaveBookRequest is the body of PUT /api/v1/me/books.
type SaveBookRequest struct {
	BookID      string   `json:"book_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// SavedBook converts the request into the domain record.
func (r SaveBookRequest) SavedBook() models.SavedBook {
	return models.SavedBook{
		BookID:      r.BookID,
		Title:       r.Title,
		Authors:     r.Authors,
		Description: r.Description,
		Image:       r.Image,
		Link:        r.Link,
	}
}

// SavedBooksResponse carries the caller's updated collection after a
// save or remove mutation.
type SavedBooksResponse struct {
	SavedBooks []models.SavedBook `json:"saved_books"`
	BookCount  int                `json:"book_count"`
}

// UsersResponse is the body of GET /api/v1/users.
type UsersResponse struct {
	Users []models.Profile `json:"users"`
}
