package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nkarpenko/bookshelf/internal/server/service"
	"github.com/nkarpenko/bookshelf/pkg/api"
)

// UsersHandler handles the public profile routes.
type UsersHandler struct {
	logger     *slog.Logger
	collection *service.Collection
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(logger *slog.Logger, collection *service.Collection) *UsersHandler {
	return &UsersHandler{
		logger:     logger,
		collection: collection,
	}
}

// List handles GET /api/v1/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.collection.ListUsers(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, api.UsersResponse{Users: profiles}, http.StatusOK)
}

// Get handles GET /api/v1/users/{username}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		sendError(h.logger, w, "username is required", http.StatusBadRequest)
		return
	}

	profile, err := h.collection.GetUser(r.Context(), username)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, profile, http.StatusOK)
}
