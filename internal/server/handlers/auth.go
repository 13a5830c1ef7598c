// Package handlers contains the HTTP layer: thin adapters that decode
// requests, invoke the collection service and encode its results.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nkarpenko/bookshelf/internal/server/service"
	"github.com/nkarpenko/bookshelf/pkg/api"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	logger     *slog.Logger
	collection *service.Collection
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(logger *slog.Logger, collection *service.Collection) *AuthHandler {
	return &AuthHandler{
		logger:     logger,
		collection: collection,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.collection.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.AuthResponse{
		Token: result.Token,
		User:  result.Profile,
	}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.collection.Login(ctx, req.Email, req.Password)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.AuthResponse{
		Token: result.Token,
		User:  result.Profile,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
