package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nkarpenko/bookshelf/internal/server/service"
	"github.com/nkarpenko/bookshelf/pkg/api"
)

// BooksHandler handles the authenticated profile and collection routes.
type BooksHandler struct {
	logger     *slog.Logger
	collection *service.Collection
}

// NewBooksHandler creates a new collection handler.
func NewBooksHandler(logger *slog.Logger, collection *service.Collection) *BooksHandler {
	return &BooksHandler{
		logger:     logger,
		collection: collection,
	}
}

// Me handles GET /api/v1/me.
func (h *BooksHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.collection.CurrentUser(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, profile, http.StatusOK)
}

// SaveBook handles PUT /api/v1/me/books.
func (h *BooksHandler) SaveBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SaveBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode save book request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	books, err := h.collection.SaveBook(ctx, req.SavedBook())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.SavedBooksResponse{
		SavedBooks: books,
		BookCount:  len(books),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// RemoveBook handles DELETE /api/v1/me/books/{bookId}.
func (h *BooksHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")
	if bookID == "" {
		sendError(h.logger, w, "book id is required", http.StatusBadRequest)
		return
	}

	books, err := h.collection.RemoveBook(r.Context(), bookID)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.SavedBooksResponse{
		SavedBooks: books,
		BookCount:  len(books),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
